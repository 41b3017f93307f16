// Package apiconnect wires the messages in package api to Connect handlers
// and clients. The layout follows what protoc-gen-connect-go emits so the
// services can move to generated code without touching callers.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/minions-03/billing-system/pkg/api"
)

// Fully-qualified service names.
const (
	CatalogServiceName = "billing.v1.CatalogService"
	BillingServiceName = "billing.v1.BillingService"
	PaymentServiceName = "billing.v1.PaymentService"
	AuthServiceName    = "billing.v1.AuthService"
)

// Procedure names. Each is the full HTTP path of the RPC.
const (
	CatalogServiceCreateProductProcedure = "/billing.v1.CatalogService/CreateProduct"
	CatalogServiceUpdateProductProcedure = "/billing.v1.CatalogService/UpdateProduct"
	CatalogServiceDeleteProductProcedure = "/billing.v1.CatalogService/DeleteProduct"
	CatalogServiceGetProductProcedure    = "/billing.v1.CatalogService/GetProduct"
	CatalogServiceListProductsProcedure  = "/billing.v1.CatalogService/ListProducts"
	BillingServiceCreateBillProcedure    = "/billing.v1.BillingService/CreateBill"
	BillingServiceGetBillProcedure       = "/billing.v1.BillingService/GetBill"
	BillingServiceListBillsProcedure     = "/billing.v1.BillingService/ListBills"
	BillingServiceRecordPaymentProcedure = "/billing.v1.BillingService/RecordPayment"
	PaymentServiceCreatePaymentProcedure = "/billing.v1.PaymentService/CreatePayment"
	PaymentServiceAmendPaymentProcedure  = "/billing.v1.PaymentService/AmendPayment"
	PaymentServiceDeletePaymentProcedure = "/billing.v1.PaymentService/DeletePayment"
	PaymentServiceGetPaymentProcedure    = "/billing.v1.PaymentService/GetPayment"
	PaymentServiceListPaymentsProcedure  = "/billing.v1.PaymentService/ListPayments"
	AuthServiceLoginProcedure            = "/billing.v1.AuthService/Login"
	AuthServiceLogoutProcedure           = "/billing.v1.AuthService/Logout"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

// CatalogServiceClient is a client for the billing.v1.CatalogService service.
type CatalogServiceClient interface {
	CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error)
	UpdateProduct(context.Context, *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
	GetProduct(context.Context, *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error)
	ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error)
}

// NewCatalogServiceClient constructs a client for the billing.v1.CatalogService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &catalogServiceClient{
		createProduct: connect.NewClient[api.CreateProductRequest, api.CreateProductResponse](
			httpClient,
			baseURL+CatalogServiceCreateProductProcedure,
			opts...,
		),
		updateProduct: connect.NewClient[api.UpdateProductRequest, api.UpdateProductResponse](
			httpClient,
			baseURL+CatalogServiceUpdateProductProcedure,
			opts...,
		),
		deleteProduct: connect.NewClient[api.DeleteProductRequest, api.DeleteProductResponse](
			httpClient,
			baseURL+CatalogServiceDeleteProductProcedure,
			opts...,
		),
		getProduct: connect.NewClient[api.GetProductRequest, api.GetProductResponse](
			httpClient,
			baseURL+CatalogServiceGetProductProcedure,
			opts...,
		),
		listProducts: connect.NewClient[api.ListProductsRequest, api.ListProductsResponse](
			httpClient,
			baseURL+CatalogServiceListProductsProcedure,
			opts...,
		),
	}
}

// catalogServiceClient implements CatalogServiceClient.
type catalogServiceClient struct {
	createProduct *connect.Client[api.CreateProductRequest, api.CreateProductResponse]
	updateProduct *connect.Client[api.UpdateProductRequest, api.UpdateProductResponse]
	deleteProduct *connect.Client[api.DeleteProductRequest, api.DeleteProductResponse]
	getProduct    *connect.Client[api.GetProductRequest, api.GetProductResponse]
	listProducts  *connect.Client[api.ListProductsRequest, api.ListProductsResponse]
}

// CreateProduct calls billing.v1.CatalogService.CreateProduct.
func (c *catalogServiceClient) CreateProduct(ctx context.Context, req *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	return c.createProduct.CallUnary(ctx, req)
}

// UpdateProduct calls billing.v1.CatalogService.UpdateProduct.
func (c *catalogServiceClient) UpdateProduct(ctx context.Context, req *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error) {
	return c.updateProduct.CallUnary(ctx, req)
}

// DeleteProduct calls billing.v1.CatalogService.DeleteProduct.
func (c *catalogServiceClient) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return c.deleteProduct.CallUnary(ctx, req)
}

// GetProduct calls billing.v1.CatalogService.GetProduct.
func (c *catalogServiceClient) GetProduct(ctx context.Context, req *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error) {
	return c.getProduct.CallUnary(ctx, req)
}

// ListProducts calls billing.v1.CatalogService.ListProducts.
func (c *catalogServiceClient) ListProducts(ctx context.Context, req *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	return c.listProducts.CallUnary(ctx, req)
}

// CatalogServiceHandler is implemented by the billing.v1.CatalogService service.
// Manages products, prices and stock counts.
type CatalogServiceHandler interface {
	CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error)
	UpdateProduct(context.Context, *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
	GetProduct(context.Context, *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error)
	ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	catalogServiceCreateProductHandler := connect.NewUnaryHandler(
		CatalogServiceCreateProductProcedure,
		svc.CreateProduct,
		opts...,
	)
	catalogServiceUpdateProductHandler := connect.NewUnaryHandler(
		CatalogServiceUpdateProductProcedure,
		svc.UpdateProduct,
		opts...,
	)
	catalogServiceDeleteProductHandler := connect.NewUnaryHandler(
		CatalogServiceDeleteProductProcedure,
		svc.DeleteProduct,
		opts...,
	)
	catalogServiceGetProductHandler := connect.NewUnaryHandler(
		CatalogServiceGetProductProcedure,
		svc.GetProduct,
		opts...,
	)
	catalogServiceListProductsHandler := connect.NewUnaryHandler(
		CatalogServiceListProductsProcedure,
		svc.ListProducts,
		opts...,
	)
	return "/billing.v1.CatalogService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogServiceCreateProductProcedure:
			catalogServiceCreateProductHandler.ServeHTTP(w, r)
		case CatalogServiceUpdateProductProcedure:
			catalogServiceUpdateProductHandler.ServeHTTP(w, r)
		case CatalogServiceDeleteProductProcedure:
			catalogServiceDeleteProductHandler.ServeHTTP(w, r)
		case CatalogServiceGetProductProcedure:
			catalogServiceGetProductHandler.ServeHTTP(w, r)
		case CatalogServiceListProductsProcedure:
			catalogServiceListProductsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCatalogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCatalogServiceHandler struct{}

func (UnimplementedCatalogServiceHandler) CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.CatalogService.CreateProduct is not implemented"))
}

func (UnimplementedCatalogServiceHandler) UpdateProduct(context.Context, *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.CatalogService.UpdateProduct is not implemented"))
}

func (UnimplementedCatalogServiceHandler) DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.CatalogService.DeleteProduct is not implemented"))
}

func (UnimplementedCatalogServiceHandler) GetProduct(context.Context, *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.CatalogService.GetProduct is not implemented"))
}

func (UnimplementedCatalogServiceHandler) ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.CatalogService.ListProducts is not implemented"))
}

// BillingServiceClient is a client for the billing.v1.BillingService service.
type BillingServiceClient interface {
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
}

// NewBillingServiceClient constructs a client for the billing.v1.BillingService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillingServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &billingServiceClient{
		createBill: connect.NewClient[api.CreateBillRequest, api.CreateBillResponse](
			httpClient,
			baseURL+BillingServiceCreateBillProcedure,
			opts...,
		),
		getBill: connect.NewClient[api.GetBillRequest, api.GetBillResponse](
			httpClient,
			baseURL+BillingServiceGetBillProcedure,
			opts...,
		),
		listBills: connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](
			httpClient,
			baseURL+BillingServiceListBillsProcedure,
			opts...,
		),
		recordPayment: connect.NewClient[api.RecordPaymentRequest, api.RecordPaymentResponse](
			httpClient,
			baseURL+BillingServiceRecordPaymentProcedure,
			opts...,
		),
	}
}

// billingServiceClient implements BillingServiceClient.
type billingServiceClient struct {
	createBill    *connect.Client[api.CreateBillRequest, api.CreateBillResponse]
	getBill       *connect.Client[api.GetBillRequest, api.GetBillResponse]
	listBills     *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	recordPayment *connect.Client[api.RecordPaymentRequest, api.RecordPaymentResponse]
}

// CreateBill calls billing.v1.BillingService.CreateBill.
func (c *billingServiceClient) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

// GetBill calls billing.v1.BillingService.GetBill.
func (c *billingServiceClient) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

// ListBills calls billing.v1.BillingService.ListBills.
func (c *billingServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// RecordPayment calls billing.v1.BillingService.RecordPayment.
func (c *billingServiceClient) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

// BillingServiceHandler is implemented by the billing.v1.BillingService service.
// Issues bills and records customer payments against them.
type BillingServiceHandler interface {
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
}

// NewBillingServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillingServiceHandler(svc BillingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	billingServiceCreateBillHandler := connect.NewUnaryHandler(
		BillingServiceCreateBillProcedure,
		svc.CreateBill,
		opts...,
	)
	billingServiceGetBillHandler := connect.NewUnaryHandler(
		BillingServiceGetBillProcedure,
		svc.GetBill,
		opts...,
	)
	billingServiceListBillsHandler := connect.NewUnaryHandler(
		BillingServiceListBillsProcedure,
		svc.ListBills,
		opts...,
	)
	billingServiceRecordPaymentHandler := connect.NewUnaryHandler(
		BillingServiceRecordPaymentProcedure,
		svc.RecordPayment,
		opts...,
	)
	return "/billing.v1.BillingService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillingServiceCreateBillProcedure:
			billingServiceCreateBillHandler.ServeHTTP(w, r)
		case BillingServiceGetBillProcedure:
			billingServiceGetBillHandler.ServeHTTP(w, r)
		case BillingServiceListBillsProcedure:
			billingServiceListBillsHandler.ServeHTTP(w, r)
		case BillingServiceRecordPaymentProcedure:
			billingServiceRecordPaymentHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedBillingServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBillingServiceHandler struct{}

func (UnimplementedBillingServiceHandler) CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.BillingService.CreateBill is not implemented"))
}

func (UnimplementedBillingServiceHandler) GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.BillingService.GetBill is not implemented"))
}

func (UnimplementedBillingServiceHandler) ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.BillingService.ListBills is not implemented"))
}

func (UnimplementedBillingServiceHandler) RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.BillingService.RecordPayment is not implemented"))
}

// PaymentServiceClient is a client for the billing.v1.PaymentService service.
type PaymentServiceClient interface {
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error)
	AmendPayment(context.Context, *connect.Request[api.AmendPaymentRequest]) (*connect.Response[api.AmendPaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error)
	GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
}

// NewPaymentServiceClient constructs a client for the billing.v1.PaymentService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaymentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &paymentServiceClient{
		createPayment: connect.NewClient[api.CreatePaymentRequest, api.CreatePaymentResponse](
			httpClient,
			baseURL+PaymentServiceCreatePaymentProcedure,
			opts...,
		),
		amendPayment: connect.NewClient[api.AmendPaymentRequest, api.AmendPaymentResponse](
			httpClient,
			baseURL+PaymentServiceAmendPaymentProcedure,
			opts...,
		),
		deletePayment: connect.NewClient[api.DeletePaymentRequest, api.DeletePaymentResponse](
			httpClient,
			baseURL+PaymentServiceDeletePaymentProcedure,
			opts...,
		),
		getPayment: connect.NewClient[api.GetPaymentRequest, api.GetPaymentResponse](
			httpClient,
			baseURL+PaymentServiceGetPaymentProcedure,
			opts...,
		),
		listPayments: connect.NewClient[api.ListPaymentsRequest, api.ListPaymentsResponse](
			httpClient,
			baseURL+PaymentServiceListPaymentsProcedure,
			opts...,
		),
	}
}

// paymentServiceClient implements PaymentServiceClient.
type paymentServiceClient struct {
	createPayment *connect.Client[api.CreatePaymentRequest, api.CreatePaymentResponse]
	amendPayment  *connect.Client[api.AmendPaymentRequest, api.AmendPaymentResponse]
	deletePayment *connect.Client[api.DeletePaymentRequest, api.DeletePaymentResponse]
	getPayment    *connect.Client[api.GetPaymentRequest, api.GetPaymentResponse]
	listPayments  *connect.Client[api.ListPaymentsRequest, api.ListPaymentsResponse]
}

// CreatePayment calls billing.v1.PaymentService.CreatePayment.
func (c *paymentServiceClient) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	return c.createPayment.CallUnary(ctx, req)
}

// AmendPayment calls billing.v1.PaymentService.AmendPayment.
func (c *paymentServiceClient) AmendPayment(ctx context.Context, req *connect.Request[api.AmendPaymentRequest]) (*connect.Response[api.AmendPaymentResponse], error) {
	return c.amendPayment.CallUnary(ctx, req)
}

// DeletePayment calls billing.v1.PaymentService.DeletePayment.
func (c *paymentServiceClient) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}

// GetPayment calls billing.v1.PaymentService.GetPayment.
func (c *paymentServiceClient) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	return c.getPayment.CallUnary(ctx, req)
}

// ListPayments calls billing.v1.PaymentService.ListPayments.
func (c *paymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

// PaymentServiceHandler is implemented by the billing.v1.PaymentService service.
// Records payments made to suppliers.
type PaymentServiceHandler interface {
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error)
	AmendPayment(context.Context, *connect.Request[api.AmendPaymentRequest]) (*connect.Response[api.AmendPaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error)
	GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
}

// NewPaymentServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	paymentServiceCreatePaymentHandler := connect.NewUnaryHandler(
		PaymentServiceCreatePaymentProcedure,
		svc.CreatePayment,
		opts...,
	)
	paymentServiceAmendPaymentHandler := connect.NewUnaryHandler(
		PaymentServiceAmendPaymentProcedure,
		svc.AmendPayment,
		opts...,
	)
	paymentServiceDeletePaymentHandler := connect.NewUnaryHandler(
		PaymentServiceDeletePaymentProcedure,
		svc.DeletePayment,
		opts...,
	)
	paymentServiceGetPaymentHandler := connect.NewUnaryHandler(
		PaymentServiceGetPaymentProcedure,
		svc.GetPayment,
		opts...,
	)
	paymentServiceListPaymentsHandler := connect.NewUnaryHandler(
		PaymentServiceListPaymentsProcedure,
		svc.ListPayments,
		opts...,
	)
	return "/billing.v1.PaymentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PaymentServiceCreatePaymentProcedure:
			paymentServiceCreatePaymentHandler.ServeHTTP(w, r)
		case PaymentServiceAmendPaymentProcedure:
			paymentServiceAmendPaymentHandler.ServeHTTP(w, r)
		case PaymentServiceDeletePaymentProcedure:
			paymentServiceDeletePaymentHandler.ServeHTTP(w, r)
		case PaymentServiceGetPaymentProcedure:
			paymentServiceGetPaymentHandler.ServeHTTP(w, r)
		case PaymentServiceListPaymentsProcedure:
			paymentServiceListPaymentsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedPaymentServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPaymentServiceHandler struct{}

func (UnimplementedPaymentServiceHandler) CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.PaymentService.CreatePayment is not implemented"))
}

func (UnimplementedPaymentServiceHandler) AmendPayment(context.Context, *connect.Request[api.AmendPaymentRequest]) (*connect.Response[api.AmendPaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.PaymentService.AmendPayment is not implemented"))
}

func (UnimplementedPaymentServiceHandler) DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.PaymentService.DeletePayment is not implemented"))
}

func (UnimplementedPaymentServiceHandler) GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.PaymentService.GetPayment is not implemented"))
}

func (UnimplementedPaymentServiceHandler) ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.PaymentService.ListPayments is not implemented"))
}

// AuthServiceClient is a client for the billing.v1.AuthService service.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
}

// NewAuthServiceClient constructs a client for the billing.v1.AuthService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](
			httpClient,
			baseURL+AuthServiceLoginProcedure,
			opts...,
		),
		logout: connect.NewClient[api.LogoutRequest, api.LogoutResponse](
			httpClient,
			baseURL+AuthServiceLogoutProcedure,
			opts...,
		),
	}
}

// authServiceClient implements AuthServiceClient.
type authServiceClient struct {
	login  *connect.Client[api.LoginRequest, api.LoginResponse]
	logout *connect.Client[api.LogoutRequest, api.LogoutResponse]
}

// Login calls billing.v1.AuthService.Login.
func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// Logout calls billing.v1.AuthService.Logout.
func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the billing.v1.AuthService service.
// Issues and clears session tokens.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	authServiceLoginHandler := connect.NewUnaryHandler(
		AuthServiceLoginProcedure,
		svc.Login,
		opts...,
	)
	authServiceLogoutHandler := connect.NewUnaryHandler(
		AuthServiceLogoutProcedure,
		svc.Logout,
		opts...,
	)
	return "/billing.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceLoginProcedure:
			authServiceLoginHandler.ServeHTTP(w, r)
		case AuthServiceLogoutProcedure:
			authServiceLogoutHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billing.v1.AuthService.Logout is not implemented"))
}
