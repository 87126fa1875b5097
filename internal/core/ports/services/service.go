package services

// ServiceContainer holds instances of all the application services. This is
// the entry point used by the handlers.
type ServiceContainer struct {
	Document   DocumentSvcFacade
	Reporting  ReportingSvcFacade
	User       UserSvcFacade
	Department DepartmentSvcFacade
	Case       CaseSvcFacade
}
