package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockDocRepo  *MockDocumentRepository
	mockUserRepo *MockUserRepository
	mockCaseSvc  *MockCaseService
	service      portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCaseSvc = new(MockCaseService)
	suite.service = services.NewReportingService(suite.mockDocRepo, suite.mockUserRepo, suite.mockCaseSvc)
}

func (suite *ReportingServiceTestSuite) TestGetHistory_DocumentMissing() {
	ctx := context.Background()
	suite.mockDocRepo.On("FindDocumentByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetHistory(ctx, "nope")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "FindHistoryByDocumentID", ctx, "nope")
}

func (suite *ReportingServiceTestSuite) TestGetHistory_OldestFirstPassthrough() {
	ctx := context.Background()
	doc := draftDocument()
	records := []domain.DocumentStatusHistory{
		{HistoryID: "h1", DocumentID: "doc-1", Status: domain.StatusDraft, Comment: "Document uploaded as draft"},
		{HistoryID: "h2", DocumentID: "doc-1", Status: domain.StatusSubmitted, Comment: "Document submitted for review and routed to Finance"},
	}

	suite.mockDocRepo.On("FindDocumentByID", ctx, "doc-1").Return(doc, nil).Once()
	suite.mockDocRepo.On("FindHistoryByDocumentID", ctx, "doc-1").Return(records, nil).Once()

	history, err := suite.service.GetHistory(ctx, "doc-1")

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("h1", history[0].HistoryID)
	suite.Equal("h2", history[1].HistoryID)
}

func (suite *ReportingServiceTestSuite) TestGenerateReceipt_Layout() {
	ctx := context.Background()
	doc := draftDocument()
	doc.FileSize = 2048
	approverID := "approver-1"
	processedAt := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	doc.Status = domain.StatusApproved
	doc.ApprovedByID = &approverID
	doc.ProcessedAt = &processedAt

	suite.mockDocRepo.On("FindDocumentByID", ctx, "doc-1").Return(doc, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "uploader-1").Return(uploaderUser(), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "approver-1").Return(approverUser(), nil).Once()
	suite.mockCaseSvc.On("GetCaseByID", ctx, "case-1").Return(&domain.Case{CaseID: "case-1", Title: "Vendor Dispute"}, nil).Once()

	receipt, err := suite.service.GenerateReceipt(ctx, "doc-1")

	suite.Require().NoError(err)
	suite.Contains(receipt, "E-FILECONNECT RECEIPT")
	suite.Contains(receipt, "Receipt Number: EF1700000000000-ABCD1234")
	suite.Contains(receipt, "Document Title: Q2 Financial Report")
	suite.Contains(receipt, "File Size: 2.0 KB")
	suite.Contains(receipt, "Status: APPROVED")
	suite.Contains(receipt, "Uploaded By: Pat Uploader")
	suite.Contains(receipt, "Email: pat@example.com")
	suite.Contains(receipt, "Case Title: Vendor Dispute")
	suite.Contains(receipt, "Approved By: Ada Approver")
	suite.Contains(receipt, "Valid for record keeping only")
}

func (suite *ReportingServiceTestSuite) TestGenerateReceipt_RejectedShowsReason() {
	ctx := context.Background()
	reason := "Numbers do not reconcile with the ledger"
	doc := draftDocument()
	doc.Status = domain.StatusRejected
	doc.RejectionReason = &reason

	suite.mockDocRepo.On("FindDocumentByID", ctx, "doc-1").Return(doc, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "uploader-1").Return(uploaderUser(), nil).Once()
	suite.mockCaseSvc.On("GetCaseByID", ctx, "case-1").Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.GenerateReceipt(ctx, "doc-1")

	suite.Require().NoError(err)
	suite.Contains(receipt, "Rejection Reason: "+reason)
	suite.NotContains(receipt, "Case Information")
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
