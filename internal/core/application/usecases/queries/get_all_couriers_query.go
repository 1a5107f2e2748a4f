// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery retrieves information about all couriers in the system.
// Returns courier identities, availability and last known locations for the
// admin dashboard.
//
// Example:
//
//	query := NewGetAllCouriersQuery()
//	handler := NewGetAllCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//
//	for _, c := range couriers {
//	    fmt.Printf("Courier %s (%s) is %s\n", c.Name, c.VehicleType, c.Availability)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates a query to retrieve all couriers.
// This is a parameterless query that fetches the whole courier roster.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCouriersQueryIsNotConstructed if validation fails.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// GetAllCouriersQueryResponse represents courier roster information.
type GetAllCouriersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	VehicleType  string
	Availability string
	Lat          *float64
	Lng          *float64
}
