package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ironfit-labs/gym-platform/internal/dto"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/httpresp"
	"github.com/ironfit-labs/gym-platform/internal/middleware"
	ucBooking "github.com/ironfit-labs/gym-platform/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
	updateStatusUC *ucBooking.UpdateStatus
	updateUC       *ucBooking.UpdateBooking
	deleteUC       *ucBooking.DeleteBooking
	listUC         *ucBooking.ListBookings
	reportUC       *ucBooking.BookingReport
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
	updateStatusUC *ucBooking.UpdateStatus,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
	listUC *ucBooking.ListBookings,
	reportUC *ucBooking.BookingReport,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		availabilityUC: availabilityUC,
		updateStatusUC: updateStatusUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		listUC:         listUC,
		reportUC:       reportUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       *int   `json:"age"`
	Date      string `json:"date"` // YYYY-MM-DD
	TimeSlot  string `json:"timeSlot"`
	TrainerID string `json:"trainerId"`
	Status    string `json:"status"`
}

type UpdateBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       *int   `json:"age"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	TrainerID string `json:"trainerId"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		TrainerID: req.TrainerID,
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Status:    req.Status,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		return
	}

	httpresp.Created(c, gin.H{"success": true, "booking": b})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	email := c.Query("email")

	// Members only ever see their own bookings; admins may filter freely.
	if role, ok := c.Get(middleware.ContextUserRole); ok && role != middleware.RoleAdmin {
		if own, ok := c.Get(middleware.ContextUserEmail); ok {
			email = own.(string)
		}
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	res, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.AvailabilityQuery{
		TrainerID: c.Param("trainerId"),
		Date:      c.Param("date"),
		TimeSlot:  c.Param("timeSlot"),
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_check_availability", "Could not check availability.")
		return
	}

	if res.BookedSlots != nil {
		httpresp.OK(c, gin.H{"success": true, "booked_slots": res.BookedSlots})
		return
	}

	// success=false means occupied.
	httpresp.OK(c, gin.H{"success": res.Free})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update status.")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "booking": b})
}

// ======================================================
// UPDATE DETAILS
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, ucBooking.UpdateBookingInput{
		TrainerID: req.TrainerID,
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_booking", "Could not update booking.")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "booking": b})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete booking.")
		return
	}

	httpresp.OK(c, gin.H{"success": true})
}

// ======================================================
// REPORT
// ======================================================

func (h *BookingHandler) Report(c *gin.Context) {
	bookings, err := h.reportUC.Execute(c.Request.Context(), ucBooking.ReportQuery{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    c.Query("status"),
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_build_report", "Could not build report.")
		return
	}

	rows := make([]dto.BookingReportDTO, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, dto.NewBookingReportDTO(b))
	}

	httpresp.List(c, rows)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}
