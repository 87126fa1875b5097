package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

func TestRouteTargetName(t *testing.T) {
	tests := []struct {
		docType domain.DocumentType
		want    string
	}{
		{domain.TypeFinancialReport, domain.DeptFinance},
		{domain.TypeProcurementBid, domain.DeptFinance},
		{domain.TypeInvestmentReport, domain.DeptFinance},
		{domain.TypeLegalDocument, domain.DeptLegal},
		{domain.TypeAuditReport, domain.DeptAudit},
		{domain.TypeGeneral, ""},
		{domain.DocumentType("UNKNOWN"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.RouteTargetName(tt.docType), "type %s", tt.docType)
	}
}
