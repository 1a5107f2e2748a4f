// Package http exposes the REST API. Handlers translate requests into
// commands and queries, and map core errors onto HTTP status codes; no
// business rules live here.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/in/http/httpmodels"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/queries"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
)

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	createParcelHandler   commands.CreateParcelCommandHandler
	editParcelHandler     commands.EditParcelCommandHandler
	cancelParcelHandler   commands.CancelParcelCommandHandler
	updateStatusHandler   commands.UpdateParcelStatusCommandHandler
	updateLocationHandler commands.UpdateParcelLocationCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	createCourierHandler  commands.CreateCourierCommandHandler

	getParcelsHandler     queries.GetParcelsQueryHandler
	getParcelByIDHandler  queries.GetParcelByIDQueryHandler
	trackParcelHandler    queries.TrackParcelQueryHandler
	getAllCouriersHandler queries.GetAllCouriersQueryHandler

	wizards *wizard.Service
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	editParcelHandler commands.EditParcelCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	updateStatusHandler commands.UpdateParcelStatusCommandHandler,
	updateLocationHandler commands.UpdateParcelLocationCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getParcelByIDHandler queries.GetParcelByIDQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	wizards *wizard.Service,
) *Server {
	return &Server{
		createParcelHandler:   createParcelHandler,
		editParcelHandler:     editParcelHandler,
		cancelParcelHandler:   cancelParcelHandler,
		updateStatusHandler:   updateStatusHandler,
		updateLocationHandler: updateLocationHandler,
		assignCourierHandler:  assignCourierHandler,
		createCourierHandler:  createCourierHandler,
		getParcelsHandler:     getParcelsHandler,
		getParcelByIDHandler:  getParcelByIDHandler,
		trackParcelHandler:    trackParcelHandler,
		getAllCouriersHandler: getAllCouriersHandler,
		wizards:               wizards,
	}
}

// RegisterRoutes mounts all API routes on e. jwtSecret signs the Bearer
// tokens accepted by the authenticated routes.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/parcels/track/:trackingNumber", s.TrackParcel)

	authed := api.Group("", Auth(jwtSecret))
	authed.GET("/parcels", s.GetParcels)
	authed.POST("/parcels", s.CreateParcel)
	authed.GET("/parcels/:id", s.GetParcelByID)
	authed.PUT("/parcels/:id", s.EditParcel)
	authed.PUT("/parcels/:id/cancel", s.CancelParcel)

	authed.POST("/wizard", s.OpenWizard)
	authed.GET("/wizard", s.GetWizard)
	authed.PUT("/wizard/step", s.SubmitWizardStep)
	authed.PUT("/wizard/back", s.WizardBack)
	authed.DELETE("/wizard", s.DiscardWizard)
	authed.POST("/wizard/confirm", s.ConfirmWizard)

	admin := authed.Group("", RequireAdmin)
	admin.GET("/admin/parcels", s.GetAllParcels)
	admin.PUT("/admin/parcels/:id/status", s.UpdateParcelStatus)
	admin.PUT("/admin/parcels/:id/location", s.UpdateParcelLocation)
	admin.PUT("/admin/parcels/:id/assign", s.AssignCourier)
	admin.GET("/couriers", s.GetCouriers)
	admin.POST("/couriers", s.CreateCourier)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// TrackParcel handles GET /api/v1/parcels/track/:trackingNumber. Public;
// the snapshot exposes no personal data.
func (s *Server) TrackParcel(c echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(c.Param("trackingNumber"))
	if err != nil {
		return badRequest(c, "trackingNumber", "Invalid tracking number")
	}

	query, err := queries.NewTrackParcelQuery(trackingNumber)
	if err != nil {
		return writeError(c, err)
	}

	snapshot, err := s.trackParcelHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// GetParcels handles GET /api/v1/parcels and lists the caller's parcels.
func (s *Server) GetParcels(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	query, err := queries.NewGetParcelsQuery(userID)
	if err != nil {
		return writeError(c, err)
	}

	parcels, err := s.getParcelsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, parcelSummaries(parcels))
}

// GetAllParcels handles GET /api/v1/admin/parcels and lists every parcel.
// A client that disconnects mid-query gets no response, not a 5xx.
func (s *Server) GetAllParcels(c echo.Context) error {
	parcels, err := s.getParcelsHandler.Handle(c.Request().Context(), queries.NewGetAllParcelsQuery())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, parcelSummaries(parcels))
}

// CreateParcel handles POST /api/v1/parcels, the single-shot creation path.
func (s *Server) CreateParcel(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	var req httpmodels.CreateParcelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		userID,
		req.SenderName,
		req.SenderPhone,
		req.ReceiverName,
		req.ReceiverPhone,
		req.PickupAddress,
		req.DestinationAddress,
		req.WeightKg,
	)
	if err != nil {
		return writeError(c, err)
	}

	pickup, err := optPoint(req.PickupLat, req.PickupLng)
	if err != nil {
		return writeError(c, err)
	}
	destination, err := optPoint(req.DestinationLat, req.DestinationLng)
	if err != nil {
		return writeError(c, err)
	}
	if cmd, err = cmd.WithCoords(pickup, destination); err != nil {
		return writeError(c, err)
	}

	if err = s.createParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, httpmodels.CreateParcelResponse{ID: cmd.ParcelID().String()})
}

// GetParcelByID handles GET /api/v1/parcels/:id. Owners see their own
// parcels; admins see any.
func (s *Server) GetParcelByID(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "Invalid parcel id")
	}

	query, err := queries.NewGetParcelByIDQuery(parcelID)
	if err != nil {
		return writeError(c, err)
	}

	detail, err := s.getParcelByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	role, _ := c.Get(ctxUserRole).(string)
	if detail.OwnerID != userID && role != roleAdmin {
		return forbidden(c, "Parcel belongs to another user")
	}

	return c.JSON(http.StatusOK, parcelDetail(detail))
}

// EditParcel handles PUT /api/v1/parcels/:id and updates receiver and
// destination details while the parcel is still editable.
func (s *Server) EditParcel(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "Invalid parcel id")
	}

	var req httpmodels.EditParcelRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	cmd, err := commands.NewEditParcelCommand(parcelID, userID, req.ReceiverName, req.ReceiverPhone, req.DestinationAddress)
	if err != nil {
		return writeError(c, err)
	}

	destination, err := optPoint(req.DestinationLat, req.DestinationLng)
	if err != nil {
		return writeError(c, err)
	}
	if cmd, err = cmd.WithDestinationCoords(destination); err != nil {
		return writeError(c, err)
	}

	if err = s.editParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelParcel handles PUT /api/v1/parcels/:id/cancel.
func (s *Server) CancelParcel(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "Invalid parcel id")
	}

	cmd, err := commands.NewCancelParcelCommand(parcelID, userID)
	if err != nil {
		return writeError(c, err)
	}

	if role, _ := c.Get(ctxUserRole).(string); role == roleAdmin {
		cmd = cmd.ByAdmin()
	}

	if err = s.cancelParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles PUT /api/v1/admin/parcels/:id/status.
func (s *Server) UpdateParcelStatus(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "Invalid parcel id")
	}

	var req httpmodels.UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	status, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, status)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateParcelLocation handles PUT /api/v1/admin/parcels/:id/location.
func (s *Server) UpdateParcelLocation(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "Invalid parcel id")
	}

	var req httpmodels.UpdateLocationRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateParcelLocationCommand(parcelID, point)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateLocationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignCourier handles PUT /api/v1/admin/parcels/:id/assign and assigns
// the nearest available courier to the parcel.
func (s *Server) AssignCourier(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "Invalid parcel id")
	}

	cmd, err := commands.NewAssignCourierCommandForParcel(parcelID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.assignCourierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]httpmodels.Courier, len(couriers))
	for i, courier := range couriers {
		response[i] = httpmodels.Courier{
			ID:           courier.ID.String(),
			Name:         courier.Name,
			Phone:        courier.Phone,
			VehicleType:  courier.VehicleType,
			Availability: courier.Availability,
			Lat:          courier.Lat,
			Lng:          courier.Lng,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var req httpmodels.CreateCourierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.Phone, req.VehicleType)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.createCourierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// OpenWizard handles POST /api/v1/wizard and starts a fresh creation
// wizard, replacing any previous one.
func (s *Server) OpenWizard(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	return c.JSON(http.StatusCreated, wizardState(s.wizards.Open(userID)))
}

// GetWizard handles GET /api/v1/wizard.
func (s *Server) GetWizard(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	w, err := s.wizards.Get(userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, wizardState(w))
}

// SubmitWizardStep handles PUT /api/v1/wizard/step. The body carries the
// fields of the current step; a validation failure returns 400 with the
// failing field and leaves the wizard where it was.
func (s *Server) SubmitWizardStep(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	var form wizard.Form
	if err := c.Bind(&form); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	w, fieldErr, err := s.wizards.Submit(userID, form)
	if err != nil {
		return writeError(c, err)
	}
	if fieldErr != nil {
		return badRequest(c, fieldErr.Field, fieldErr.Message)
	}

	return c.JSON(http.StatusOK, wizardState(w))
}

// WizardBack handles PUT /api/v1/wizard/back.
func (s *Server) WizardBack(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	w, err := s.wizards.Back(userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, wizardState(w))
}

// DiscardWizard handles DELETE /api/v1/wizard.
func (s *Server) DiscardWizard(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	s.wizards.Discard(userID)
	return c.NoContent(http.StatusNoContent)
}

// ConfirmWizard handles POST /api/v1/wizard/confirm: charge the pinned
// quote, create the parcel, and return the receipt.
func (s *Server) ConfirmWizard(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return unauthorized(c, "Missing authentication")
	}

	result, err := s.wizards.Confirm(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, httpmodels.ConfirmResponse{
		ParcelID:      result.ParcelID.String(),
		TransactionID: result.TransactionID,
		Amount:        result.Amount,
	})
}
