package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/battlesched/internal/config"
	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the set of attributes accepted at the top level of a file.
// List-valued attributes are kept as expressions and converted explicitly so
// that error messages can name the attribute.
type fileRoot struct {
	Seed       *int64         `hcl:"seed,optional"`
	DatasetDir *string        `hcl:"dataset_dir,optional"`
	Sizes      hcl.Expression `hcl:"sizes,optional"`
	Launcher   hcl.Expression `hcl:"launcher,optional"`
	Chart      *string        `hcl:"chart,optional"`
	Report     *string        `hcl:"report,optional"`
}

// Load parses every .hcl file found under paths and merges them in order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find configuration files in %s: %w", path, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no .hcl configuration files found in %s", path)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileModel, err := translate(&root, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		model = model.Merge(fileModel)
		logger.Debug("Configuration file merged.", "file", file)
	}

	return model, nil
}

func translate(root *fileRoot, evalCtx *hcl.EvalContext) (*config.Model, error) {
	m := &config.Model{Seed: root.Seed}
	if root.DatasetDir != nil {
		m.DatasetDir = *root.DatasetDir
	}
	if root.Chart != nil {
		m.Chart = *root.Chart
	}
	if root.Report != nil {
		m.Report = *root.Report
	}

	sizes, err := decodeList[int](root.Sizes, evalCtx, cty.Number, "sizes")
	if err != nil {
		return nil, err
	}
	m.Sizes = sizes

	launcher, err := decodeList[string](root.Launcher, evalCtx, cty.String, "launcher")
	if err != nil {
		return nil, err
	}
	m.Launcher = launcher

	return m, nil
}
