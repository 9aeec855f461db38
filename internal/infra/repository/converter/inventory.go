package converter

import (
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
)

func ItemToCreateParams(it *inventory.Item) sqlc.CreateInventoryItemParams {
	return sqlc.CreateInventoryItemParams{
		ID:           it.ID(),
		OwnerID:      it.OwnerID(),
		Name:         it.Name(),
		Quantity:     it.Quantity(),
		BestBeforeAt: pgconv.TimePtrToPgtype(it.BestBeforeAt()),
		ExpiresAt:    pgconv.TimePtrToPgtype(it.ExpiresAt()),
		Status:       it.Status().String(),
		City:         it.Location().City(),
		Pincode:      it.Location().Pincode(),
		Version:      it.Version(),
		CreatedAt:    pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(it.UpdatedAt()),
	}
}

func ItemFromRow(row sqlc.InventoryItems) (*inventory.Item, error) {
	status, err := inventory.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return inventory.ReconstructItem(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Quantity,
		pgconv.TimePtrFromPgtype(row.BestBeforeAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		status,
		location.Reconstruct(row.City, row.Pincode),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
