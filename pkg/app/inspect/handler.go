package inspect

import (
	"strings"

	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/quantities"
	"github.com/deploymenttheory/go-initfield/internal/services"
	"github.com/deploymenttheory/go-initfield/internal/types"
	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// Handle processes an inspection request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Load the model the file is read into
	def, err := app.LoadModel(ctx, req.ModelPath)
	if err != nil {
		return nil, err
	}

	// 3. Read the initial field file
	ctx.Log("reading initial field file", "target", req.Target.String())
	svc := services.NewInitialFieldFile(ctx.Fs, services.WithLogger(ctx.Logger))
	result, err := svc.Read(ctx, services.ReadRequest{
		FilePath:       req.Target.FilePath,
		ParentFilePath: req.Target.Parent(),
		Model:          def,
	})
	if err != nil {
		ctx.Error("reading initial field file failed", "file", req.Target.FilePath, "error", err)
		return nil, app.ClassifyError("failed to read initial field file", err)
	}

	// 4. Build the response
	response := &Response{
		File:              req.Target.FilePath,
		ParentFile:        req.Target.Parent(),
		InitialConditions: len(result.Data.InitialConditions()),
		Parameters:        len(result.Data.Parameters()),
		Model:             summarizeModel(def, svc.Registry()),
		Report:            app.NewReportSummary(result.Report, ctx.Verbose),
	}
	for _, fr := range result.Fields {
		record := newRecordResult(fr)
		if record.Imported {
			response.Imported++
		}
		if !record.Valid {
			response.Invalid++
		}
		response.Records = append(response.Records, record)
	}

	ctx.Log("inspection completed", "records", len(response.Records), "imported", response.Imported, "invalid", response.Invalid)
	return response, nil
}

func newRecordResult(fr services.FieldResult) RecordResult {
	field := fr.Field
	record := RecordResult{
		Group:        groupOf(field),
		Quantity:     field.Quantity.String(),
		DataFile:     field.DataFileName,
		DataFileType: field.DataFileType.String(),
		Location:     field.LocationType.String(),
		Value:        field.Value,
		Valid:        fr.Validation.Valid,
		Imported:     fr.Imported,
		Operation:    field.SpatialOperationName,
	}
	if !fr.Validation.Valid {
		record.Reason = fr.Validation.Message
	}
	if field.IsSpatial() {
		record.Interpolation = field.InterpolationMethod.String()
		if field.UsesAveraging() {
			record.Interpolation += "/" + field.AveragingType.String()
		}
		record.Operand = field.Operand.String()
	}
	return record
}

func groupOf(field *types.InitialFieldData) string {
	if field.IsParameter() {
		return "Parameter"
	}
	return "Initial"
}

func summarizeModel(def *model.Definition, registry *quantities.Registry) ModelSummary {
	summary := ModelSummary{
		FrictionType:       def.FrictionType().String(),
		InitialCondition2D: def.InitialConditionQuantity2D().String(),
		InitialCondition1D: def.InitialConditionQuantity1D().String(),
		InitialValue1D:     def.InitialConditionValue1D(),
		Operations:         make(map[string]int),
	}
	for _, e := range registry.Entries() {
		if n := len(def.SpatialOperations(e.DataItemName)); n > 0 {
			summary.Operations[strings.ToLower(e.Quantity.DisplayName())] = n
		}
	}
	return summary
}
