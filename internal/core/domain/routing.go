package domain

// Routing target department names. The directory matches these
// case-insensitively.
const (
	DeptFinance = "Finance"
	DeptLegal   = "Legal"
	DeptAudit   = "Audit"
)

// RouteTargetName decides, purely from the document type, which department
// should review a submitted document. The empty string means "the uploader's
// own department"; the caller resolves that against the directory. Keeping
// this a pure function keeps lifecycle correctness independent of directory
// availability.
func RouteTargetName(docType DocumentType) string {
	switch docType {
	case TypeFinancialReport, TypeProcurementBid, TypeInvestmentReport:
		return DeptFinance
	case TypeLegalDocument:
		return DeptLegal
	case TypeAuditReport:
		return DeptAudit
	default:
		return ""
	}
}
