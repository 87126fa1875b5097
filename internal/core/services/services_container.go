package services

import (
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/storage"
)

// NewServiceContainer wires the repositories and the blob store into the full
// service set handed to the handlers.
func NewServiceContainer(repos portsrepo.RepositoryProvider, blobs storage.BlobStore) *portssvc.ServiceContainer {
	caseSvc := NewCaseService(repos.CaseRepo)
	deptSvc := NewDepartmentService(repos.DepartmentRepo)
	userSvc := NewUserService(repos.UserRepo)
	docSvc := NewDocumentService(repos.DocumentRepo, repos.UserRepo, deptSvc, caseSvc, blobs)
	reportingSvc := NewReportingService(repos.DocumentRepo, repos.UserRepo, caseSvc)

	return &portssvc.ServiceContainer{
		Document:   docSvc,
		Reporting:  reportingSvc,
		User:       userSvc,
		Department: deptSvc,
		Case:       caseSvc,
	}
}
