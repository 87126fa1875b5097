package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
)

const receiptBanner = "============================================================"

type reportingService struct {
	BaseService
	docRepo  portsrepo.DocumentRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
	caseSvc  portssvc.CaseSvcFacade
}

// NewReportingService creates the audit trail and receipt service.
func NewReportingService(
	docRepo portsrepo.DocumentRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	caseSvc portssvc.CaseSvcFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		docRepo:  docRepo,
		userRepo: userRepo,
		caseSvc:  caseSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetHistory(ctx context.Context, documentID string) ([]domain.DocumentStatusHistory, error) {
	// The document must exist; an empty trail for a live document is a data
	// defect, an unknown id is plain not-found.
	if _, err := s.docRepo.FindDocumentByID(ctx, documentID); err != nil {
		return nil, err
	}
	history, err := s.docRepo.FindHistoryByDocumentID(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load document history", slog.String("document_id", documentID))
		return nil, err
	}
	return history, nil
}

func (s *reportingService) GenerateReceipt(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	uploader, err := s.userRepo.FindUserByID(ctx, doc.UploadedByID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve uploader for receipt", slog.String("document_id", documentID))
		return "", err
	}

	var b strings.Builder
	b.WriteString(receiptBanner + "\n")
	b.WriteString("                    E-FILECONNECT RECEIPT\n")
	b.WriteString(receiptBanner + "\n\n")

	fmt.Fprintf(&b, "Receipt Number: %s\n", doc.ReceiptNumber)
	fmt.Fprintf(&b, "Document ID: %s\n", doc.DocumentID)
	fmt.Fprintf(&b, "Document Title: %s\n", doc.Title)
	fmt.Fprintf(&b, "Document Type: %s\n", doc.Type)
	fmt.Fprintf(&b, "File Size: %s\n", formatFileSize(doc.FileSize))
	fmt.Fprintf(&b, "Status: %s\n\n", doc.Status)

	b.WriteString("Submission Details:\n")
	b.WriteString("------------------------------\n")
	fmt.Fprintf(&b, "Uploaded By: %s\n", uploader.Name)
	fmt.Fprintf(&b, "Email: %s\n", uploader.Email)
	fmt.Fprintf(&b, "Upload Date: %s\n", doc.UploadedAt.UTC().Format(time.RFC3339))

	if caseEntity, err := s.caseSvc.GetCaseByID(ctx, doc.CaseID); err == nil {
		b.WriteString("\nCase Information:\n")
		b.WriteString("------------------------------\n")
		fmt.Fprintf(&b, "Case ID: %s\n", caseEntity.CaseID)
		fmt.Fprintf(&b, "Case Title: %s\n", caseEntity.Title)
	}

	if doc.ApprovedByID != nil {
		if approver, err := s.userRepo.FindUserByID(ctx, *doc.ApprovedByID); err == nil {
			b.WriteString("\nApproval Details:\n")
			b.WriteString("------------------------------\n")
			fmt.Fprintf(&b, "Approved By: %s\n", approver.Name)
			if doc.ProcessedAt != nil {
				fmt.Fprintf(&b, "Process Date: %s\n", doc.ProcessedAt.UTC().Format(time.RFC3339))
			}
		}
	}

	if doc.RejectionReason != nil {
		fmt.Fprintf(&b, "\nRejection Reason: %s\n", *doc.RejectionReason)
	}

	b.WriteString("\n" + receiptBanner + "\n")
	b.WriteString("            This is an electronically generated receipt\n")
	b.WriteString("                   Valid for record keeping only\n")
	b.WriteString(receiptBanner + "\n")

	return b.String(), nil
}

func formatFileSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	if size < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(size)/1024.0)
	}
	return fmt.Sprintf("%.1f MB", float64(size)/(1024.0*1024.0))
}
