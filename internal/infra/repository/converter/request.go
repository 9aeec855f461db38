package converter

import (
	"foodbridge/internal/domain/location"
	"foodbridge/internal/domain/request"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
)

func RequestToCreateParams(r *request.FoodRequest) sqlc.CreateFoodRequestParams {
	return sqlc.CreateFoodRequestParams{
		ID:          r.ID(),
		RequesterID: r.RequesterID(),
		SupplierID:  r.SupplierID(),
		ItemID:      r.ItemID(),
		ItemName:    r.ItemName(),
		City:        r.Location().City(),
		Pincode:     r.Location().Pincode(),
		Quantity:    r.Quantity(),
		PickupDate:  pgconv.TimePtrToPgtype(r.PickupDate()),
		Notes:       r.Notes(),
		Status:      r.Status().String(),
		Version:     r.Version(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RequestFromRow(row sqlc.FoodRequests) (*request.FoodRequest, error) {
	status, err := request.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return request.ReconstructFoodRequest(
		row.ID,
		row.RequesterID,
		row.SupplierID,
		row.ItemID,
		row.ItemName,
		location.Reconstruct(row.City, row.Pincode),
		row.Quantity,
		pgconv.TimePtrFromPgtype(row.PickupDate),
		row.Notes,
		status,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	), nil
}
