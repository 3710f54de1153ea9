package station

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// SetAvailability toggles the station's fuel availability flag
//
// Possible errors:
// - ErrStationNotFound: If the station doesn't exist
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) SetAvailability(ctx context.Context, stationID uint64, fuelAvailable bool) (*entity.Station, error) {
	st, err := u.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	st.FuelAvailable = fuelAvailable
	if err := u.stationRepo.Update(ctx, st); err != nil {
		return nil, err
	}

	u.logger.Info("Station availability updated", map[string]any{
		"station_id":     stationID,
		"fuel_available": fuelAvailable,
	})
	return st, nil
}

// SetPrice updates the station's posted fuel price
//
// Possible errors:
// - ErrStationNotFound: If the station doesn't exist
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) SetPrice(ctx context.Context, stationID uint64, price string) (*entity.Station, error) {
	st, err := u.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	st.Price = price
	if err := u.stationRepo.Update(ctx, st); err != nil {
		return nil, err
	}

	u.logger.Info("Station price updated", map[string]any{
		"station_id": stationID,
		"price":      price,
	})
	return st, nil
}
