package domain

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// CompanyStatus is the lifecycle status of a company.
type CompanyStatus string

// Possible company statuses.
const (
	// StatusActive is a company currently under assessment or management.
	StatusActive CompanyStatus = "active"

	// StatusInactive is a company no longer tracked.
	StatusInactive CompanyStatus = "inactive"

	// StatusAcquired is a company acquired into the portfolio.
	StatusAcquired CompanyStatus = "acquired"

	// StatusExited is a company the fund has exited.
	StatusExited CompanyStatus = "exited"
)

// CompanyStatuses returns all statuses in declaration order.
func CompanyStatuses() []CompanyStatus {
	return []CompanyStatus{StatusActive, StatusInactive, StatusAcquired, StatusExited}
}

// IsValid returns true if the status is recognised.
func (s CompanyStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusAcquired, StatusExited:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s CompanyStatus) String() string {
	return string(s)
}

// OwnershipType classifies the fund's relationship to a company.
type OwnershipType string

// Possible ownership types.
const (
	// OwnershipPortfolio is a current portfolio company.
	OwnershipPortfolio OwnershipType = "portfolio"

	// OwnershipTarget is a company being evaluated for investment.
	OwnershipTarget OwnershipType = "target"

	// OwnershipExited is a former portfolio company.
	OwnershipExited OwnershipType = "exited"

	// OwnershipBenchmark is tracked for comparison only.
	OwnershipBenchmark OwnershipType = "benchmark"
)

// OwnershipTypes returns all ownership types in declaration order.
func OwnershipTypes() []OwnershipType {
	return []OwnershipType{OwnershipPortfolio, OwnershipTarget, OwnershipExited, OwnershipBenchmark}
}

// IsValid returns true if the ownership type is recognised.
func (o OwnershipType) IsValid() bool {
	switch o {
	case OwnershipPortfolio, OwnershipTarget, OwnershipExited, OwnershipBenchmark:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o OwnershipType) String() string {
	return string(o)
}

// CompanyCreate is the creation-time subset of Company: the fields a caller
// supplies before the system assigns an identity and timestamps.
type CompanyCreate struct {
	// Name is the legal or trading name, 1-200 characters.
	Name string `json:"name"`

	// Ticker is the stock ticker, when listed. At most 20 characters.
	Ticker *string `json:"ticker,omitempty"`

	// Domain is the primary web domain. At most 200 characters.
	Domain *string `json:"domain,omitempty"`

	// CIK is the SEC Central Index Key, when filed. At most 20 characters.
	CIK *string `json:"cik,omitempty"`

	// SectorID references a SectorCalibration. The reference is resolved
	// by the service owning both collections, not by this value object.
	SectorID string `json:"sector_id"`

	// SubSectorID optionally narrows the sector.
	SubSectorID *string `json:"sub_sector_id,omitempty"`

	// EnterpriseValue is the EV in EVCurrency, non-negative. Stored as an
	// exact decimal; no floating-point drift is permitted.
	EnterpriseValue *decimal.Decimal `json:"enterprise_value,omitempty"`

	// EVCurrency is the ISO 4217 code for EnterpriseValue, exactly 3
	// characters. Defaults to "USD".
	EVCurrency string `json:"ev_currency"`

	// EVAsOfDate is the valuation date for EnterpriseValue.
	EVAsOfDate *time.Time `json:"ev_as_of_date,omitempty"`

	// OwnershipType defaults to target at creation.
	OwnershipType OwnershipType `json:"ownership_type"`

	// FundID optionally links the company to a fund.
	FundID *string `json:"fund_id,omitempty"`
}

// Company is the full entity, including system-assigned identity and
// timestamps. Companies are value objects: no live references to other
// entities, only soft foreign keys.
type Company struct {
	// CompanyID is globally unique, assigned at creation, immutable.
	CompanyID string `json:"company_id"`

	// Name is the legal or trading name, 1-200 characters.
	Name string `json:"name"`

	// Ticker is the stock ticker, when listed. At most 20 characters.
	Ticker *string `json:"ticker,omitempty"`

	// Domain is the primary web domain. At most 200 characters.
	Domain *string `json:"domain,omitempty"`

	// CIK is the SEC Central Index Key, when filed. At most 20 characters.
	CIK *string `json:"cik,omitempty"`

	// SectorID references a SectorCalibration (soft foreign key).
	SectorID string `json:"sector_id"`

	// SubSectorID optionally narrows the sector.
	SubSectorID *string `json:"sub_sector_id,omitempty"`

	// EnterpriseValue is the EV in EVCurrency, non-negative, exact decimal.
	EnterpriseValue *decimal.Decimal `json:"enterprise_value,omitempty"`

	// EVCurrency is the ISO 4217 code for EnterpriseValue, exactly 3
	// characters. Defaults to "USD".
	EVCurrency string `json:"ev_currency"`

	// EVAsOfDate is the valuation date for EnterpriseValue.
	EVAsOfDate *time.Time `json:"ev_as_of_date,omitempty"`

	// Status defaults to active.
	Status CompanyStatus `json:"status"`

	// OwnershipType is optional on the full entity.
	OwnershipType *OwnershipType `json:"ownership_type,omitempty"`

	// FundID optionally links the company to a fund.
	FundID *string `json:"fund_id,omitempty"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt must be refreshed on every mutation. No mutation API
	// exists yet; the contract is preserved for future extension.
	UpdatedAt time.Time `json:"updated_at"`
}

// Field length caps shared by CompanyCreate and Company.
const (
	maxNameLen      = 200
	maxTickerLen    = 20
	maxDomainLen    = 200
	maxCIKLen       = 20
	currencyLen     = 3
	maxRationaleLen = 1000
	defaultCurrency = "USD"
)

// NewCompanyCreate validates a raw record and returns a CompanyCreate.
// Every violated constraint is reported; the error, when non-nil, is
// always a ValidationErrors.
func NewCompanyCreate(rec Record) (CompanyCreate, error) {
	var errs ValidationErrors

	cc := CompanyCreate{
		Name:        rec.reqString("name", maxNameLen, &errs),
		Ticker:      rec.optString("ticker", maxTickerLen, &errs),
		Domain:      rec.optString("domain", maxDomainLen, &errs),
		CIK:         rec.optString("cik", maxCIKLen, &errs),
		SectorID:    rec.reqString("sector_id", 0, &errs),
		SubSectorID: rec.optString("sub_sector_id", 0, &errs),
		FundID:      rec.optString("fund_id", 0, &errs),
		EVAsOfDate:  rec.optDate("ev_as_of_date", &errs),
	}

	cc.EnterpriseValue = rec.optDecimal("enterprise_value", &errs)
	if cc.EnterpriseValue != nil && cc.EnterpriseValue.IsNegative() {
		errs.Add("enterprise_value", "must be greater than or equal to 0, got %s", cc.EnterpriseValue)
	}

	cc.EVCurrency = validateCurrency(rec, &errs)
	cc.OwnershipType = validateOwnership(rec, OwnershipTarget, &errs)

	if err := errs.orNil(); err != nil {
		return CompanyCreate{}, err
	}
	return cc, nil
}

// NewCompany validates a raw record carrying the full entity, including
// system fields. Used to re-validate serialised or generated companies.
func NewCompany(rec Record) (Company, error) {
	var errs ValidationErrors

	cc, err := NewCompanyCreate(rec)
	if verrs, ok := err.(ValidationErrors); ok {
		errs = append(errs, verrs...)
	}

	c := Company{
		CompanyID:       rec.reqString("company_id", 0, &errs),
		Name:            cc.Name,
		Ticker:          cc.Ticker,
		Domain:          cc.Domain,
		CIK:             cc.CIK,
		SectorID:        cc.SectorID,
		SubSectorID:     cc.SubSectorID,
		EnterpriseValue: cc.EnterpriseValue,
		EVCurrency:      cc.EVCurrency,
		EVAsOfDate:      cc.EVAsOfDate,
		FundID:          cc.FundID,
	}

	c.Status = StatusActive
	if rec.has("status") {
		s, ok := rec["status"].(string)
		if !ok {
			errs.Add("status", "must be a string, got %T", rec["status"])
		} else if st := CompanyStatus(s); !st.IsValid() {
			errs.Add("status", "must be one of %s, got %q", statusList(), s)
		} else {
			c.Status = st
		}
	}

	if rec.has("ownership_type") {
		ot := cc.OwnershipType
		c.OwnershipType = &ot
	}

	if rec.has("created_at") {
		c.CreatedAt = rec.reqDate("created_at", &errs)
	} else {
		errs.Add("created_at", "is required")
	}
	if rec.has("updated_at") {
		c.UpdatedAt = rec.reqDate("updated_at", &errs)
	} else {
		errs.Add("updated_at", "is required")
	}

	if err := errs.orNil(); err != nil {
		return Company{}, err
	}
	return c, nil
}

// PromoteCompany lifts a validated CompanyCreate into a full Company,
// assigning the given identity and setting both timestamps to now.
// The caller supplies id and now; generating them is the one impure step
// of company creation and belongs to the owning service.
func PromoteCompany(cc CompanyCreate, id string, now time.Time) Company {
	ot := cc.OwnershipType
	return Company{
		CompanyID:       id,
		Name:            cc.Name,
		Ticker:          cc.Ticker,
		Domain:          cc.Domain,
		CIK:             cc.CIK,
		SectorID:        cc.SectorID,
		SubSectorID:     cc.SubSectorID,
		EnterpriseValue: cc.EnterpriseValue,
		EVCurrency:      cc.EVCurrency,
		EVAsOfDate:      cc.EVAsOfDate,
		Status:          StatusActive,
		OwnershipType:   &ot,
		FundID:          cc.FundID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func validateCurrency(rec Record, errs *ValidationErrors) string {
	if !rec.has("ev_currency") {
		return defaultCurrency
	}
	s, ok := rec["ev_currency"].(string)
	if !ok {
		errs.Add("ev_currency", "must be a string, got %T", rec["ev_currency"])
		return defaultCurrency
	}
	if utf8.RuneCountInString(s) != currencyLen {
		errs.Add("ev_currency", "must be exactly %d characters, got %q", currencyLen, s)
		return defaultCurrency
	}
	return s
}

func validateOwnership(rec Record, def OwnershipType, errs *ValidationErrors) OwnershipType {
	if !rec.has("ownership_type") {
		return def
	}
	s, ok := rec["ownership_type"].(string)
	if !ok {
		errs.Add("ownership_type", "must be a string, got %T", rec["ownership_type"])
		return def
	}
	ot := OwnershipType(s)
	if !ot.IsValid() {
		errs.Add("ownership_type", "must be one of %s, got %q", ownershipList(), s)
		return def
	}
	return ot
}

func statusList() string {
	return "active, inactive, acquired, exited"
}

func ownershipList() string {
	return "portfolio, target, exited, benchmark"
}
