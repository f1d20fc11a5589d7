package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avelasqz/biblioteca-service/internal/errs"
	"github.com/avelasqz/biblioteca-service/internal/model"
	md "github.com/avelasqz/biblioteca-service/pkg/middleware"
	"github.com/avelasqz/biblioteca-service/pkg/validate"
)

type Handler struct {
	loanSvc LoanService
	log     *zap.Logger
}

func New(loanSvc LoanService, log *zap.Logger) *Handler {
	return &Handler{
		loanSvc: loanSvc,
		log:     log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/loans", h.CreateLoan)
	api.GET("/loans", h.ListLoans)
	api.GET("/loans/active", h.ActiveLoans)
	api.GET("/loans/overdue", h.OverdueLoans)
	api.GET("/loans/pending", h.PendingLoans)
	api.GET("/loans/:loanUid", h.GetLoan)
	api.GET("/loans/:loanUid/overdue", h.IsOverdue)
	api.POST("/loans/:loanUid/approve", h.ApproveLoan)
	api.POST("/loans/:loanUid/cancel", h.CancelLoan)
	api.POST("/loans/:loanUid/return", h.ReturnLoan)

	api.GET("/reports/zones/:zone", h.ZoneReport)
	api.GET("/reports/librarians/:librarianId", h.LibrarianHistory)
	api.GET("/reports/pending-materials", h.PendingMaterialsRanking)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError keeps the error taxonomy to HTTP status mapping in one place.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidDate),
		errors.Is(err, errs.ErrMissingReference):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrReaderSuspended),
		errors.Is(err, errs.ErrMaterialUnavailable),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrLoanLimit):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.loanSvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) GetLoan(c echo.Context) error {
	loanUid := c.Param("loanUid")
	loan, err := h.loanSvc.GetLoan(c.Request().Context(), loanUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) IsOverdue(c echo.Context) error {
	loanUid := c.Param("loanUid")
	overdue, err := h.loanSvc.IsOverdue(c.Request().Context(), loanUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"overdue": overdue})
}

func (h *Handler) ApproveLoan(c echo.Context) error {
	return h.transition(c, h.loanSvc.ApproveLoan)
}

func (h *Handler) CancelLoan(c echo.Context) error {
	return h.transition(c, h.loanSvc.CancelLoan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	return h.transition(c, h.loanSvc.ReturnLoan)
}

func (h *Handler) transition(c echo.Context, op func(ctx context.Context, loanUid string) error) error {
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}
	if err := op(c.Request().Context(), loanUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

// ListLoans serves the filtered read operations: by librarian, by zone or
// by request-date range (dates as DD/MM/YYYY).
func (h *Handler) ListLoans(c echo.Context) error {
	ctx := c.Request().Context()

	if librarianParam := c.QueryParam("librarianId"); librarianParam != "" {
		librarianID, err := strconv.ParseInt(librarianParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("librarianId is invalid"))
		}
		loans, err := h.loanSvc.LoansByLibrarian(ctx, librarianID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, loans)
	}

	if zone := c.QueryParam("zone"); zone != "" {
		loans, err := h.loanSvc.LoansByZone(ctx, model.Zone(zone))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, loans)
	}

	fromParam, toParam := c.QueryParam("from"), c.QueryParam("to")
	if fromParam != "" && toParam != "" {
		from, err := model.ParseDate(fromParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("from is invalid"))
		}
		to, err := model.ParseDate(toParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("to is invalid"))
		}
		loans, err := h.loanSvc.LoansByDateRange(ctx, from, to)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, loans)
	}

	return echo.NewHTTPError(http.StatusBadRequest, errors.New("one of librarianId, zone or from/to is required"))
}

func (h *Handler) ActiveLoans(c echo.Context) error {
	ctx := c.Request().Context()

	if readerParam := c.QueryParam("readerId"); readerParam != "" {
		readerID, err := strconv.ParseInt(readerParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("readerId is invalid"))
		}
		loans, err := h.loanSvc.ActiveLoansByReader(ctx, readerID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, loans)
	}

	loans, err := h.loanSvc.AllActiveLoans(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) OverdueLoans(c echo.Context) error {
	loans, err := h.loanSvc.OverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) PendingLoans(c echo.Context) error {
	materialParam := c.QueryParam("materialId")
	if materialParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("materialId is required"))
	}
	materialID, err := strconv.ParseInt(materialParam, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("materialId is invalid"))
	}
	loans, err := h.loanSvc.PendingLoansByMaterial(c.Request().Context(), materialID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ZoneReport(c echo.Context) error {
	zone := c.Param("zone")
	if zone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("zone is required"))
	}
	stats, err := h.loanSvc.ZoneReport(c.Request().Context(), model.Zone(zone))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) LibrarianHistory(c echo.Context) error {
	librarianID, err := strconv.ParseInt(c.Param("librarianId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("librarianId is invalid"))
	}
	stats, err := h.loanSvc.LibrarianHistory(c.Request().Context(), librarianID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) PendingMaterialsRanking(c echo.Context) error {
	ranking, err := h.loanSvc.PendingMaterialsRanking(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ranking)
}
