package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/dto"
	"github.com/efileconnect/efc_backend/internal/handlers"
	"github.com/efileconnect/efc_backend/internal/middleware"
)

// --- Mock DocumentService ---

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) GetDocumentByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.Document, error) {
	args := m.Called(ctx, receiptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) SearchDocuments(ctx context.Context, criteria dto.DocumentSearchCriteria) (*dto.ListDocumentsResponse, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDocumentsResponse), args.Error(1)
}

func (m *MockDocumentService) ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) DownloadDocument(ctx context.Context, documentID string) (io.ReadCloser, *domain.Document, error) {
	args := m.Called(ctx, documentID)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var doc *domain.Document
	if args.Get(1) != nil {
		doc = args.Get(1).(*domain.Document)
	}
	return rc, doc, args.Error(2)
}

func (m *MockDocumentService) UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, content io.Reader, size int64, filename string, actorID string) (*domain.Document, error) {
	args := m.Called(ctx, req, content, size, filename, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) SubmitDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) StartReview(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ApproveDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) RejectDocument(ctx context.Context, documentID, actorID, reason string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, actorID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) WithdrawDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ReopenDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, documentID, actorID string) error {
	args := m.Called(ctx, documentID, actorID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Test Suite ---

type DocumentHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	jwtSecret           string
}

func (suite *DocumentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "efc-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDocumentService = new(MockDocumentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDocumentRoutes(v1, suite.mockDocumentService)
}

func (suite *DocumentHandlerTestSuite) doRequest(method, path, userID string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testDocument() *domain.Document {
	return &domain.Document{
		DocumentID:    "doc-1",
		Title:         "Q2 Financial Report",
		Type:          domain.TypeFinancialReport,
		Status:        domain.StatusSubmitted,
		FilePath:      "2026/08/case-1/blob.pdf",
		FileSize:      2048,
		CaseID:        "case-1",
		UploadedByID:  "uploader-1",
		ReceiptNumber: "EF1700000000000-ABCD1234",
		UploadedAt:    time.Now(),
	}
}

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_Success() {
	doc := testDocument()
	suite.mockDocumentService.On("SubmitDocument", mock.Anything, "doc-1", "uploader-1").Return(doc, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/documents/doc-1/submit", "uploader-1", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SUBMITTED", resp.Status)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_Unauthenticated() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/submit", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_InvalidTransitionMapsToConflict() {
	suite.mockDocumentService.On("SubmitDocument", mock.Anything, "doc-1", "uploader-1").
		Return(nil, apperrors.NewInvalidTransitionError("APPROVED", "SUBMITTED")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/documents/doc-1/submit", "uploader-1", nil, "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestApproveDocument_ForbiddenMapsTo403() {
	suite.mockDocumentService.On("ApproveDocument", mock.Anything, "doc-1", "user-2").
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/documents/doc-1/approve", "user-2", nil, "")

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFoundMapsTo404() {
	suite.mockDocumentService.On("GetDocumentByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/documents/missing", "uploader-1", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestRejectDocument_MissingReasonMapsTo400() {
	body := bytes.NewBufferString(`{}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/documents/doc-1/reject", "approver-1", body, "application/json")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "RejectDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentHandlerTestSuite) TestRejectDocument_Success() {
	doc := testDocument()
	doc.Status = domain.StatusRejected
	reason := "Numbers do not reconcile with the ledger"
	suite.mockDocumentService.On("RejectDocument", mock.Anything, "doc-1", "approver-1", reason).Return(doc, nil).Once()

	body, _ := json.Marshal(dto.RejectDocumentRequest{Reason: reason})
	w := suite.doRequest(http.MethodPost, "/api/v1/documents/doc-1/reject", "approver-1", bytes.NewReader(body), "application/json")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestUploadDocument_Success() {
	doc := testDocument()
	doc.Status = domain.StatusDraft

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	suite.Require().NoError(mw.WriteField("title", "Q2 Financial Report"))
	suite.Require().NoError(mw.WriteField("type", "FINANCIAL_REPORT"))
	suite.Require().NoError(mw.WriteField("caseID", "case-1"))
	part, err := mw.CreateFormFile("file", "report.pdf")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("pdf bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	suite.mockDocumentService.On("UploadDocument", mock.Anything, dto.UploadDocumentRequest{
		Title:  "Q2 Financial Report",
		Type:   "FINANCIAL_REPORT",
		CaseID: "case-1",
	}, mock.Anything, int64(9), "report.pdf", "uploader-1").Return(doc, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/documents", "uploader-1", &buf, mw.FormDataContentType())

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestDeleteDocument_NoContent() {
	suite.mockDocumentService.On("DeleteDocument", mock.Anything, "doc-1", "admin-1").Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/documents/doc-1", "admin-1", nil, "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestSearchDocuments_PassesCriteria() {
	resp := &dto.ListDocumentsResponse{Documents: []dto.DocumentResponse{}, Total: 0, Limit: 20, Offset: 0}
	suite.mockDocumentService.On("SearchDocuments", mock.Anything, mock.MatchedBy(func(c dto.DocumentSearchCriteria) bool {
		return c.Status != nil && *c.Status == domain.StatusApproved &&
			c.TitleKeyword != nil && *c.TitleKeyword == "audit"
	})).Return(resp, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/documents?status=APPROVED&q=audit", "uploader-1", nil, "")

	suite.Equal(http.StatusOK, w.Code)
}

func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
