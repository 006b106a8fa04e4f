package domain

// DocumentStatus is the per-document flag. Active marks the currently valid
// official copy for its category.
type DocumentStatus string

const (
	DocumentActive   DocumentStatus = "Active"
	DocumentInactive DocumentStatus = "Inactive"
)

// CategoryStatus is the computed status of a required category:
// Active/Inactive follow the documents uploaded for it; Pending means no
// document has ever been uploaded.
type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "Active"
	CategoryInactive CategoryStatus = "Inactive"
	CategoryPending  CategoryStatus = "Pending"
)

// FileLocation is where the physical personnel file is stored.
type FileLocation string

const (
	LocationHRDepartment FileLocation = "HR department"
	LocationAuditRoom    FileLocation = "Audit Room"
	LocationVigilance    FileLocation = "Vigilance"
	LocationOthers       FileLocation = "Others"
)

// FileLocations lists the valid storage locations.
var FileLocations = []FileLocation{
	LocationHRDepartment,
	LocationAuditRoom,
	LocationVigilance,
	LocationOthers,
}

// EmployeeStatus is the lifecycle state of an employee record.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
	EmployeePending  EmployeeStatus = "Pending"
)

// UserRole defines the operator role hierarchy.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// UserStatus is the lifecycle state of an operator account.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
	UserPending  UserStatus = "Pending"
)

// AuditStatus marks whether the audited action succeeded.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "success"
	AuditFailure AuditStatus = "failure"
)

// AuditAction tags an audit log entry with the action it records.
type AuditAction string

const (
	AuditUserLogin         AuditAction = "USER_LOGIN"
	AuditUserLogout        AuditAction = "USER_LOGOUT"
	AuditAuthCheck         AuditAction = "AUTH_CHECK"
	AuditUserCreated       AuditAction = "USER_CREATED"
	AuditUserDeleted       AuditAction = "USER_DELETED"
	AuditUserFetchAll      AuditAction = "USER_FETCH_ALL"
	AuditUserStatusChange  AuditAction = "USER_STATUS_CHANGE"
	AuditUserPasswordReset AuditAction = "USER_PASSWORD_RESET"

	AuditDocumentSearch         AuditAction = "DOCUMENT_SEARCH"
	AuditDocumentUpload         AuditAction = "DOCUMENT_UPLOAD"
	AuditDocumentView           AuditAction = "DOCUMENT_VIEW"
	AuditDocumentFetch          AuditAction = "DOCUMENT_FETCH"
	AuditDocumentStatusChange   AuditAction = "DOCUMENT_STATUS_CHANGE"
	AuditDocumentLocationUpdate AuditAction = "DOCUMENT_LOCATION_UPDATE"

	AuditCategoryFetch      AuditAction = "DOCUMENT_CATEGORY_FETCH"
	AuditCategoryAdd        AuditAction = "DOCUMENT_CATEGORY_ADD"
	AuditCategoryDelete     AuditAction = "DOCUMENT_CATEGORY_DELETE"
	AuditCategoryReactivate AuditAction = "DOCUMENT_CATEGORY_REACTIVATE"

	AuditEmployeeFetchAll AuditAction = "EMPLOYEE_FETCH_ALL"
	AuditEmployeeSearch   AuditAction = "EMPLOYEE_SEARCH"
)

// CategoryCatalogue maps the fixed category codes to their labels.
// The free-text "Others" code OTH is valid too; its label is supplied by the
// uploader and validated separately.
var CategoryCatalogue = map[string]string{
	"OFD": "Offer Document",
	"BOD": "BioData",
	"MTR": "Medical Test Report at Joining",
	"JOR": "Joining Report",
	"DOB": "Date of Birth Certificate",
	"QAL": "Qualifications",
	"CST": "Caste Certificate",
	"DSC": "Disability Certificate",
	"ATF": "Attestation Form",
	"NOM": "PF/Gratuity Nomination",
	"CHS": "Charge Sheet",
	"ORP": "Order Passed(DA)",
	"AWD": "Rewards/Awards",
	"ORS": "Order of Selection against internal posts",
	"ISM": "Incentive for Small Family",
	"IPQ": "Incentive for Professional Qualification",
	"PRO": "All Promotion Orders",
	"CNM": "Change of Name",
	"ITO": "Interplant Transfer Order",
	"DPL": "Dependent List",
	"ADR": "Home Town/Present Address",
	"JUD": "Judicial Document",
	"PFX": "Pay Fixation Orders",
}

// CategoryCodeOthers is the free-text category; the label comes from the
// uploader ("other type") and is validated by ResolveCategoryLabel.
const CategoryCodeOthers = "OTH"
