package rewrite

import (
	"sort"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/services"
	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// Handle reads the source file into the model and writes the model to the target
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Load the model and read the source into it
	def, err := app.LoadModel(ctx, req.ModelPath)
	if err != nil {
		return nil, err
	}

	svc := services.NewInitialFieldFile(ctx.Fs, services.WithLogger(ctx.Logger))
	read, err := svc.Read(ctx, services.ReadRequest{
		FilePath:       req.Source.FilePath,
		ParentFilePath: req.Source.Parent(),
		Model:          def,
	})
	if err != nil {
		ctx.Error("reading source file failed", "file", req.Source.FilePath, "error", err)
		return nil, app.ClassifyError("failed to read source file", err)
	}

	response := &Response{
		Source:     req.Source.FilePath,
		Target:     req.Target.FilePath,
		ReadReport: app.NewReportSummary(read.Report, ctx.Verbose),
	}

	// 3. Nothing to write for an empty model
	if !svc.ShouldWrite(def, def.Network()) {
		ctx.Log("model holds no supported spatial operations, nothing written")
		response.Skipped = true
		return response, nil
	}

	before := importPaths(def, svc)

	// 4. Write, restoring the file names of the source
	written, err := svc.Write(ctx, services.WriteRequest{
		FilePath:       req.Target.FilePath,
		ParentFilePath: req.Target.Parent(),
		SwitchTo:       req.SwitchTo,
		Model:          def,
		FileNames:      read.FileNames,
	})
	if err != nil {
		ctx.Error("writing target file failed", "file", req.Target.FilePath, "error", err)
		return nil, app.ClassifyError("failed to write target file", err)
	}

	for _, field := range written.All() {
		group := "Initial"
		if field.IsParameter() {
			group = "Parameter"
		}
		response.Records = append(response.Records, WrittenRecord{
			Group:        group,
			Quantity:     field.Quantity.String(),
			DataFile:     field.DataFileName,
			DataFileType: field.DataFileType.String(),
			Operation:    field.SpatialOperationName,
		})
	}

	if req.SwitchTo {
		for id, after := range importPaths(def, svc) {
			if prev := before[id]; prev.path != after.path {
				response.Switched = append(response.Switched, SwitchedImport{Operation: after.name, From: prev.path, To: after.path})
			}
		}
		sort.Slice(response.Switched, func(i, j int) bool {
			return response.Switched[i].To < response.Switched[j].To
		})
	}

	ctx.Log("rewrite completed", "target", req.Target.FilePath, "records", len(response.Records), "switched", len(response.Switched))
	return response, nil
}

type importPath struct {
	name string
	path string
}

// importPaths snapshots the source file of every import operation
func importPaths(def *model.Definition, svc *services.InitialFieldFile) map[uuid.UUID]importPath {
	paths := make(map[uuid.UUID]importPath)
	for _, e := range svc.Registry().Entries() {
		for _, op := range def.SpatialOperations(e.DataItemName) {
			if imported, ok := op.(*model.ImportSamplesOperation); ok {
				paths[op.ID()] = importPath{name: imported.Name(), path: imported.FilePath}
			}
		}
	}
	return paths
}
