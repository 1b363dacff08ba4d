// Package directory holds the shared domain vocabulary of the business
// directory: the closed enumerations and the records other modules score,
// link and render.
package directory

import "strings"

// Seniority is a contact's position on the seniority ladder. The zero value
// means the level is unknown.
type Seniority string

const (
	SeniorityIntern           Seniority = "INTERN"
	SeniorityCoordinator      Seniority = "COORDINATOR"
	SenioritySpecialist       Seniority = "SPECIALIST"
	SenioritySeniorSpecialist Seniority = "SENIOR_SPECIALIST"
	SeniorityManager          Seniority = "MANAGER"
	SenioritySeniorManager    Seniority = "SENIOR_MANAGER"
	SeniorityDirector         Seniority = "DIRECTOR"
	SenioritySeniorDirector   Seniority = "SENIOR_DIRECTOR"
	SeniorityVP               Seniority = "VP"
	SenioritySVP              Seniority = "SVP"
	SeniorityEVP              Seniority = "EVP"
	SeniorityCLevel           Seniority = "C_LEVEL"
	SeniorityFounderOwner     Seniority = "FOUNDER_OWNER"
)

// seniorityLadder lists levels from most junior to most senior.
var seniorityLadder = []Seniority{
	SeniorityIntern,
	SeniorityCoordinator,
	SenioritySpecialist,
	SenioritySeniorSpecialist,
	SeniorityManager,
	SenioritySeniorManager,
	SeniorityDirector,
	SenioritySeniorDirector,
	SeniorityVP,
	SenioritySVP,
	SeniorityEVP,
	SeniorityCLevel,
	SeniorityFounderOwner,
}

// Rank returns the ladder position, 1 for INTERN up to 13 for FOUNDER_OWNER.
// Unknown or absent levels rank 0.
func (s Seniority) Rank() int {
	for i, level := range seniorityLadder {
		if level == s {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether s is one of the known levels.
func (s Seniority) Valid() bool { return s.Rank() > 0 }

// ParseSeniority normalises raw into a Seniority. Unknown input yields "".
func ParseSeniority(raw string) Seniority {
	s := Seniority(normalizeEnum(raw))
	if !s.Valid() {
		return ""
	}
	return s
}

// Department is the functional area a contact works in.
type Department string

const (
	DepartmentMediaPlanning       Department = "MEDIA_PLANNING"
	DepartmentMediaBuying         Department = "MEDIA_BUYING"
	DepartmentDigitalMarketing    Department = "DIGITAL_MARKETING"
	DepartmentProgrammatic        Department = "PROGRAMMATIC"
	DepartmentSocialMedia         Department = "SOCIAL_MEDIA"
	DepartmentSearchMarketing     Department = "SEARCH_MARKETING"
	DepartmentStrategyPlanning    Department = "STRATEGY_PLANNING"
	DepartmentAnalyticsInsights   Department = "ANALYTICS_INSIGHTS"
	DepartmentCreativeServices    Department = "CREATIVE_SERVICES"
	DepartmentAccountManagement   Department = "ACCOUNT_MANAGEMENT"
	DepartmentBusinessDevelopment Department = "BUSINESS_DEVELOPMENT"
	DepartmentOperations          Department = "OPERATIONS"
	DepartmentTechnology          Department = "TECHNOLOGY"
	DepartmentFinance             Department = "FINANCE"
	DepartmentLeadership          Department = "LEADERSHIP"
	DepartmentHumanResources      Department = "HUMAN_RESOURCES"
	DepartmentSales               Department = "SALES"
	DepartmentMarketing           Department = "MARKETING"
	DepartmentProduct             Department = "PRODUCT"
	DepartmentDataScience         Department = "DATA_SCIENCE"
)

var departments = map[Department]struct{}{
	DepartmentMediaPlanning: {}, DepartmentMediaBuying: {}, DepartmentDigitalMarketing: {},
	DepartmentProgrammatic: {}, DepartmentSocialMedia: {}, DepartmentSearchMarketing: {},
	DepartmentStrategyPlanning: {}, DepartmentAnalyticsInsights: {}, DepartmentCreativeServices: {},
	DepartmentAccountManagement: {}, DepartmentBusinessDevelopment: {}, DepartmentOperations: {},
	DepartmentTechnology: {}, DepartmentFinance: {}, DepartmentLeadership: {},
	DepartmentHumanResources: {}, DepartmentSales: {}, DepartmentMarketing: {},
	DepartmentProduct: {}, DepartmentDataScience: {},
}

func (d Department) Valid() bool {
	_, ok := departments[d]
	return ok
}

// ParseDepartment normalises raw into a Department. Unknown input yields "".
func ParseDepartment(raw string) Department {
	d := Department(normalizeEnum(raw))
	if !d.Valid() {
		return ""
	}
	return d
}

// CompanyType is the market category of a company.
type CompanyType string

const (
	CompanyTypeIndependentAgency     CompanyType = "INDEPENDENT_AGENCY"
	CompanyTypeHoldingCompanyAgency  CompanyType = "HOLDING_COMPANY_AGENCY"
	CompanyTypeMediaHoldingCompany   CompanyType = "MEDIA_HOLDING_COMPANY"
	CompanyTypeNationalAdvertiser    CompanyType = "NATIONAL_ADVERTISER"
	CompanyTypeLocalAdvertiser       CompanyType = "LOCAL_ADVERTISER"
	CompanyTypeAdtechVendor          CompanyType = "ADTECH_VENDOR"
	CompanyTypeMartechVendor         CompanyType = "MARTECH_VENDOR"
	CompanyTypeMediaOwner            CompanyType = "MEDIA_OWNER"
	CompanyTypeBroadcaster           CompanyType = "BROADCASTER"
	CompanyTypePublisher             CompanyType = "PUBLISHER"
	CompanyTypeConsultancy           CompanyType = "CONSULTANCY"
	CompanyTypeProductionCompany     CompanyType = "PRODUCTION_COMPANY"
	CompanyTypeAdvertiser            CompanyType = "ADVERTISER"
	CompanyTypeAgency                CompanyType = "AGENCY"
	CompanyTypeMediaCompany          CompanyType = "MEDIA_COMPANY"
	CompanyTypeTechVendor            CompanyType = "TECH_VENDOR"
)

var companyTypes = map[CompanyType]struct{}{
	CompanyTypeIndependentAgency: {}, CompanyTypeHoldingCompanyAgency: {}, CompanyTypeMediaHoldingCompany: {},
	CompanyTypeNationalAdvertiser: {}, CompanyTypeLocalAdvertiser: {}, CompanyTypeAdtechVendor: {},
	CompanyTypeMartechVendor: {}, CompanyTypeMediaOwner: {}, CompanyTypeBroadcaster: {},
	CompanyTypePublisher: {}, CompanyTypeConsultancy: {}, CompanyTypeProductionCompany: {},
	CompanyTypeAdvertiser: {}, CompanyTypeAgency: {}, CompanyTypeMediaCompany: {},
	CompanyTypeTechVendor: {},
}

func (t CompanyType) Valid() bool {
	_, ok := companyTypes[t]
	return ok
}

// ParseCompanyType normalises raw into a CompanyType. Unknown input yields "".
func ParseCompanyType(raw string) CompanyType {
	t := CompanyType(normalizeEnum(raw))
	if !t.Valid() {
		return ""
	}
	return t
}

// EmployeeRange is a head-count bucket.
type EmployeeRange string

const (
	EmployeeRangeStartup    EmployeeRange = "STARTUP_1_10"
	EmployeeRangeSmall      EmployeeRange = "SMALL_11_50"
	EmployeeRangeMedium     EmployeeRange = "MEDIUM_51_200"
	EmployeeRangeLarge      EmployeeRange = "LARGE_201_1000"
	EmployeeRangeEnterprise EmployeeRange = "ENTERPRISE_1001_5000"
	EmployeeRangeMega       EmployeeRange = "MEGA_5000_PLUS"
)

func (r EmployeeRange) Valid() bool {
	switch r {
	case EmployeeRangeStartup, EmployeeRangeSmall, EmployeeRangeMedium,
		EmployeeRangeLarge, EmployeeRangeEnterprise, EmployeeRangeMega:
		return true
	}
	return false
}

// ParseEmployeeRange normalises raw into an EmployeeRange. Unknown input yields "".
func ParseEmployeeRange(raw string) EmployeeRange {
	r := EmployeeRange(normalizeEnum(raw))
	if !r.Valid() {
		return ""
	}
	return r
}

func normalizeEnum(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
