package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sarpras/borrowing-service/internal/errs"
	"github.com/sarpras/borrowing-service/internal/handler"
	"github.com/sarpras/borrowing-service/internal/model"
	"github.com/sarpras/borrowing-service/pkg/auth"
	"github.com/sarpras/borrowing-service/pkg/validate"

	service_mocks "github.com/sarpras/borrowing-service/internal/handler/mocks"
)

var (
	adminActor    = auth.Actor{ID: 1, Name: "Admin", Role: auth.RoleAdmin}
	borrowerActor = auth.Actor{ID: 2, Name: "Peminjam", Role: auth.RoleBorrower}

	ts = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
)

func authedCtx(actor auth.Actor) context.Context {
	return auth.SetActorContext(context.Background(), actor)
}

func strPtr(s string) *string { return &s }

func TestHandler_SubmitRequest(t *testing.T) {
	t.Parallel()
	type input struct {
		actor auth.Actor
		body  string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				req := model.CreateBorrowingRequest{
					ItemType:  model.ItemTypeEquipment,
					ItemID:    3,
					Quantity:  2,
					StartDate: model.NewDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
					EndDate:   model.NewDate(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)),
					Note:      strPtr("praktikum jaringan"),
				}
				r.EXPECT().
					SubmitRequest(ctx, inp.actor, req).
					Return(model.BorrowingRequest{
						ID:        10,
						UserID:    inp.actor.ID,
						ItemType:  model.ItemTypeEquipment,
						ItemID:    3,
						Quantity:  2,
						StartDate: req.StartDate,
						EndDate:   req.EndDate,
						Status:    model.StatusPending,
						Note:      req.Note,
						CreatedAt: ts,
						UpdatedAt: ts,
					}, nil)
			},
			input: input{
				actor: borrowerActor,
				body:  `{"itemType":"equipment","itemId":3,"quantity":2,"startDate":"2026-09-01","endDate":"2026-09-03","note":"praktikum jaringan"}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":10,"userId":2,"itemType":"equipment","itemId":3,"quantity":2,"startDate":"2026-09-01","endDate":"2026-09-03","status":"pending","note":"praktikum jaringan","createdAt":"2026-08-28T10:00:00Z","updatedAt":"2026-08-28T10:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name:         "err. itemType required",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {},
			input: input{
				actor: borrowerActor,
				body:  `{"itemId":3,"quantity":1,"startDate":"2026-09-01","endDate":"2026-09-03"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"validation failed","errors":{"ItemType":"failed on the 'required' rule"}}`,
			},
			wantErr: true,
		},
		{
			name: "err. start date in the past",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					SubmitRequest(ctx, inp.actor, gomock.Any()).
					Return(model.BorrowingRequest{}, errs.NewValidationError(map[string]string{
						"startDate": "must not be before today",
					}))
			},
			input: input{
				actor: borrowerActor,
				body:  `{"itemType":"room","itemId":1,"startDate":"2020-01-01","endDate":"2020-01-02"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"validation failed","errors":{"startDate":"must not be before today"}}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					SubmitRequest(ctx, inp.actor, gomock.Any()).
					Return(model.BorrowingRequest{}, errors.New("db internal"))
			},
			input: input{
				actor: borrowerActor,
				body:  `{"itemType":"room","itemId":1,"startDate":"2026-09-01","endDate":"2026-09-03"}`,
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/borrowing-requests", h.SubmitRequest)

			ctx := authedCtx(tt.input.actor)
			r := httptest.NewRequest(
				http.MethodPost, "/api/v1/borrowing-requests", strings.NewReader(tt.input.body)).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ChangeStatus(t *testing.T) {
	t.Parallel()
	type input struct {
		actor auth.Actor
		id    string
		body  string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					ChangeStatus(ctx, inp.actor, int64(5), model.StatusApproved).
					Return(model.BorrowingRequest{
						ID:        5,
						UserID:    2,
						ItemType:  model.ItemTypeEquipment,
						ItemID:    3,
						Quantity:  1,
						StartDate: model.NewDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
						EndDate:   model.NewDate(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)),
						Status:    model.StatusApproved,
						CreatedAt: ts,
						UpdatedAt: ts,
					}, nil)
			},
			input: input{
				actor: adminActor,
				id:    "5",
				body:  `{"status":"approved"}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":5,"userId":2,"itemType":"equipment","itemId":3,"quantity":1,"startDate":"2026-09-01","endDate":"2026-09-03","status":"approved","note":null,"createdAt":"2026-08-28T10:00:00Z","updatedAt":"2026-08-28T10:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name: "err. forbidden for borrower",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					ChangeStatus(ctx, inp.actor, int64(5), model.StatusApproved).
					Return(model.BorrowingRequest{}, errs.ErrForbidden)
			},
			input: input{
				actor: borrowerActor,
				id:    "5",
				body:  `{"status":"approved"}`,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. unknown status",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {},
			input: input{
				actor: adminActor,
				id:    "5",
				body:  `{"status":"done"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"validation failed","errors":{"Status":"failed on the 'oneof' rule"}}`,
			},
			wantErr: true,
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {},
			input: input{
				actor: adminActor,
				id:    "abc",
				body:  `{"status":"approved"}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					ChangeStatus(ctx, inp.actor, int64(77), model.StatusReturned).
					Return(model.BorrowingRequest{}, errs.ErrNotFound)
			},
			input: input{
				actor: adminActor,
				id:    "77",
				body:  `{"status":"returned"}`,
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/api/v1/borrowing-requests/:id/status", h.ChangeStatus)

			ctx := authedCtx(tt.input.actor)
			r := httptest.NewRequest(
				http.MethodPatch, fmt.Sprintf("/api/v1/borrowing-requests/%s/status", tt.input.id), strings.NewReader(tt.input.body)).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetRequest(t *testing.T) {
	t.Parallel()
	type input struct {
		actor auth.Actor
		id    string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					GetRequest(ctx, inp.actor, int64(5)).
					Return(model.BorrowingRequestResponse{
						BorrowingRequest: model.BorrowingRequest{
							ID:        5,
							UserID:    2,
							ItemType:  model.ItemTypeEquipment,
							ItemID:    3,
							Quantity:  1,
							StartDate: model.NewDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
							EndDate:   model.NewDate(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)),
							Status:    model.StatusPending,
							CreatedAt: ts,
							UpdatedAt: ts,
						},
						Item: &model.ItemSummary{
							Type:     model.ItemTypeEquipment,
							ID:       3,
							Name:     "Proyektor Epson",
							Category: "elektronik",
						},
						Owner: &model.OwnerSummary{ID: 2, Name: "Peminjam"},
					}, nil)
			},
			input: input{
				actor: borrowerActor,
				id:    "5",
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":5,"userId":2,"itemType":"equipment","itemId":3,"quantity":1,"startDate":"2026-09-01","endDate":"2026-09-03","status":"pending","note":null,"createdAt":"2026-08-28T10:00:00Z","updatedAt":"2026-08-28T10:00:00Z","item":{"type":"equipment","id":3,"name":"Proyektor Epson","category":"elektronik"},"owner":{"id":2,"name":"Peminjam"}}`,
			},
			wantErr: false,
		},
		{
			name: "err. foreign request",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					GetRequest(ctx, inp.actor, int64(6)).
					Return(model.BorrowingRequestResponse{}, errs.ErrForbidden)
			},
			input: input{
				actor: borrowerActor,
				id:    "6",
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					GetRequest(ctx, inp.actor, int64(404)).
					Return(model.BorrowingRequestResponse{}, errs.ErrNotFound)
			},
			input: input{
				actor: adminActor,
				id:    "404",
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/borrowing-requests/:id", h.GetRequest)

			ctx := authedCtx(tt.input.actor)
			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/api/v1/borrowing-requests/%s", tt.input.id), http.NoBody).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListEquipment(t *testing.T) {
	t.Parallel()
	type input struct {
		page, size int
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					ListEquipment(ctx, inp.page, inp.size).
					Return(model.ListEquipment{
						Paging: model.Paging{
							Page:          inp.page,
							PageSize:      inp.size,
							TotalElements: 1,
						},
						Items: []model.Equipment{
							{
								ID:          3,
								Name:        "Proyektor Epson",
								Description: "proyektor ruang kelas",
								Quantity:    4,
								Condition:   model.ConditionGood,
								Category:    "elektronik",
								CreatedAt:   ts,
								UpdatedAt:   ts,
							},
						},
					}, nil)
			},
			input: input{page: 1, size: 10},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":3,"name":"Proyektor Epson","description":"proyektor ruang kelas","quantity":4,"condition":"good","category":"elektronik","createdAt":"2026-08-28T10:00:00Z","updatedAt":"2026-08-28T10:00:00Z"}]}`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					ListEquipment(ctx, inp.page, inp.size).
					Return(model.ListEquipment{}, errors.New("db internal"))
			},
			input: input{page: 0, size: 0},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/equipment", h.ListEquipment)

			ctx := authedCtx(borrowerActor)
			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/api/v1/equipment?page=%d&size=%d", tt.input.page, tt.input.size), http.NoBody).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateEquipment(t *testing.T) {
	t.Parallel()
	type input struct {
		actor auth.Actor
		body  string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				req := model.EquipmentRequest{
					Name:        "Kamera Canon",
					Description: "kamera dokumentasi",
					Quantity:    2,
					Condition:   model.ConditionGood,
					Category:    "elektronik",
				}
				r.EXPECT().
					CreateEquipment(ctx, inp.actor, req).
					Return(model.Equipment{
						ID:          7,
						Name:        req.Name,
						Description: req.Description,
						Quantity:    req.Quantity,
						Condition:   req.Condition,
						Category:    req.Category,
						CreatedAt:   ts,
						UpdatedAt:   ts,
					}, nil)
			},
			input: input{
				actor: adminActor,
				body:  `{"name":"Kamera Canon","description":"kamera dokumentasi","quantity":2,"condition":"good","category":"elektronik"}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":7,"name":"Kamera Canon","description":"kamera dokumentasi","quantity":2,"condition":"good","category":"elektronik","createdAt":"2026-08-28T10:00:00Z","updatedAt":"2026-08-28T10:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name:         "err. unknown condition",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {},
			input: input{
				actor: adminActor,
				body:  `{"name":"Kamera Canon","description":"kamera dokumentasi","quantity":2,"condition":"baik","category":"elektronik"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"validation failed","errors":{"Condition":"failed on the 'oneof' rule"}}`,
			},
			wantErr: true,
		},
		{
			name: "err. forbidden for borrower",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					CreateEquipment(ctx, inp.actor, gomock.Any()).
					Return(model.Equipment{}, errs.ErrForbidden)
			},
			input: input{
				actor: borrowerActor,
				body:  `{"name":"Kamera Canon","description":"kamera dokumentasi","quantity":2,"condition":"good","category":"elektronik"}`,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/equipment", h.CreateEquipment)

			ctx := authedCtx(tt.input.actor)
			r := httptest.NewRequest(
				http.MethodPost, "/api/v1/equipment", strings.NewReader(tt.input.body)).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteRequest(t *testing.T) {
	t.Parallel()
	type input struct {
		actor auth.Actor
		id    string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					DeleteRequest(ctx, inp.actor, int64(5)).
					Return(nil)
			},
			input: input{
				actor: borrowerActor,
				id:    "5",
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
			wantErr: false,
		},
		{
			name: "err. foreign request",
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, inp input) {
				r.EXPECT().
					DeleteRequest(ctx, inp.actor, int64(6)).
					Return(errs.ErrForbidden)
			},
			input: input{
				actor: borrowerActor,
				id:    "6",
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/api/v1/borrowing-requests/:id", h.DeleteRequest)

			ctx := authedCtx(tt.input.actor)
			r := httptest.NewRequest(
				http.MethodDelete, fmt.Sprintf("/api/v1/borrowing-requests/%s", tt.input.id), http.NoBody).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowingService, ctx context.Context, actor auth.Actor)

	pending := 3
	mine, minePending := 4, 1

	var tests = []struct {
		name         string
		actor        auth.Actor
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name:  "ok admin",
			actor: adminActor,
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, actor auth.Actor) {
				r.EXPECT().
					Dashboard(ctx, actor).
					Return(model.Dashboard{
						Stats: model.DashboardStats{
							TotalEquipment:     12,
							AvailableEquipment: 8,
							TotalRooms:         4,
							TotalRequests:      20,
							PendingRequests:    &pending,
						},
						RecentRequests: []model.BorrowingRequestResponse{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"stats":{"totalEquipment":12,"availableEquipment":8,"totalRooms":4,"totalRequests":20,"pendingRequests":3},"recentRequests":[]}`,
			},
			wantErr: false,
		},
		{
			name:  "ok borrower",
			actor: borrowerActor,
			mockBehavior: func(r *service_mocks.MockBorrowingService, ctx context.Context, actor auth.Actor) {
				r.EXPECT().
					Dashboard(ctx, actor).
					Return(model.Dashboard{
						Stats: model.DashboardStats{
							TotalEquipment:     12,
							AvailableEquipment: 8,
							TotalRooms:         4,
							TotalRequests:      20,
							MyRequests:         &mine,
							MyPendingRequests:  &minePending,
						},
						RecentRequests: []model.BorrowingRequestResponse{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"stats":{"totalEquipment":12,"availableEquipment":8,"totalRooms":4,"totalRequests":20,"myRequests":4,"myPendingRequests":1},"recentRequests":[]}`,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBorrowingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/dashboard", h.Dashboard)

			ctx := authedCtx(tt.actor)
			r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", http.NoBody).WithContext(ctx)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, ctx, tt.actor)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
