package reporting

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/patient"
	"github.com/medidash/medidash/internal/domain/prescription"
	"github.com/medidash/medidash/internal/platform/auth"
)

// Handler recomputes every report from the live collections on each request;
// nothing is cached.
type Handler struct {
	doctors       doctor.Repository
	patients      patient.Repository
	appointments  appointment.Repository
	labReports    labreport.Repository
	prescriptions prescription.Repository
	departments   department.Repository
	totalBeds     int
}

func NewHandler(
	doctors doctor.Repository,
	patients patient.Repository,
	appointments appointment.Repository,
	labReports labreport.Repository,
	prescriptions prescription.Repository,
	departments department.Repository,
	totalBeds int,
) *Handler {
	return &Handler{
		doctors:       doctors,
		patients:      patients,
		appointments:  appointments,
		labReports:    labReports,
		prescriptions: prescriptions,
		departments:   departments,
		totalBeds:     totalBeds,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RoleOwner))
	g.GET("/reports/financial", h.Financial)
	g.GET("/reports/operational", h.Operational)
	g.GET("/reports/doctor-performance", h.DoctorPerformance)
}

// referencePeriod reads optional month/year query params, defaulting to now.
func referencePeriod(c echo.Context) (time.Month, int) {
	now := time.Now().UTC()
	month, year := now.Month(), now.Year()
	if m, err := strconv.Atoi(c.QueryParam("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	if y, err := strconv.Atoi(c.QueryParam("year")); err == nil && y > 0 {
		year = y
	}
	return month, year
}

func (h *Handler) Financial(c echo.Context) error {
	ctx := c.Request().Context()
	appointments, err := h.appointments.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	labReports, err := h.labReports.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	prescriptions, err := h.prescriptions.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	departments, err := h.departments.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	month, year := referencePeriod(c)
	return c.JSON(http.StatusOK, ComputeFinancials(appointments, labReports, prescriptions, departments, month, year))
}

func (h *Handler) Operational(c echo.Context) error {
	ctx := c.Request().Context()
	patients, err := h.patients.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	appointments, err := h.appointments.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	departments, err := h.departments.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	doctors, err := h.doctors.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ComputeOperational(patients, appointments, departments, doctors, h.totalBeds))
}

func (h *Handler) DoctorPerformance(c echo.Context) error {
	ctx := c.Request().Context()
	doctors, err := h.doctors.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	appointments, err := h.appointments.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	prescriptions, err := h.prescriptions.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	labReports, err := h.labReports.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ComputeDoctorPerformance(doctors, appointments, prescriptions, labReports))
}
