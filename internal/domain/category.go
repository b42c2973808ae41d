package domain

import "strings"

// AssetCategory represents the kind of an asset
type AssetCategory string

const (
	AssetCategoryRealEstate        AssetCategory = "Real Estate"
	AssetCategoryVehicle           AssetCategory = "Vehicle"
	AssetCategoryBankAccount       AssetCategory = "Bank Account"
	AssetCategoryInvestmentAccount AssetCategory = "Investment Account"
	AssetCategoryRetirementAccount AssetCategory = "Retirement Account"
	AssetCategoryCash              AssetCategory = "Cash"
	AssetCategoryCryptocurrency    AssetCategory = "Cryptocurrency"
	AssetCategoryBusinessInterest  AssetCategory = "Business Interest"
	AssetCategoryCollectibles      AssetCategory = "Collectibles"
	AssetCategoryJewelry           AssetCategory = "Jewelry"
	AssetCategoryOther             AssetCategory = "Other"
)

// LiabilityCategory represents the kind of a liability
type LiabilityCategory string

const (
	LiabilityCategoryMortgage     LiabilityCategory = "Mortgage"
	LiabilityCategoryAutoLoan     LiabilityCategory = "Auto Loan"
	LiabilityCategoryStudentLoan  LiabilityCategory = "Student Loan"
	LiabilityCategoryCreditCard   LiabilityCategory = "Credit Card"
	LiabilityCategoryPersonalLoan LiabilityCategory = "Personal Loan"
	LiabilityCategoryBusinessLoan LiabilityCategory = "Business Loan"
	LiabilityCategoryMedicalDebt  LiabilityCategory = "Medical Debt"
	LiabilityCategoryOther        LiabilityCategory = "Other"
)

// CategoryInfo holds the static display metadata of a category
type CategoryInfo struct {
	Label string // Display label, also the persisted value
	Slug  string // Stable identifier used by CLI flags and completion
	Icon  string
}

// AssetCategories lists the asset categories in display order
var AssetCategories = []AssetCategory{
	AssetCategoryRealEstate,
	AssetCategoryVehicle,
	AssetCategoryBankAccount,
	AssetCategoryInvestmentAccount,
	AssetCategoryRetirementAccount,
	AssetCategoryCash,
	AssetCategoryCryptocurrency,
	AssetCategoryBusinessInterest,
	AssetCategoryCollectibles,
	AssetCategoryJewelry,
	AssetCategoryOther,
}

// LiabilityCategories lists the liability categories in display order
var LiabilityCategories = []LiabilityCategory{
	LiabilityCategoryMortgage,
	LiabilityCategoryAutoLoan,
	LiabilityCategoryStudentLoan,
	LiabilityCategoryCreditCard,
	LiabilityCategoryPersonalLoan,
	LiabilityCategoryBusinessLoan,
	LiabilityCategoryMedicalDebt,
	LiabilityCategoryOther,
}

var assetCategoryInfo = map[AssetCategory]CategoryInfo{
	AssetCategoryRealEstate:        {Label: "Real Estate", Slug: "real-estate", Icon: "🏠"},
	AssetCategoryVehicle:           {Label: "Vehicle", Slug: "vehicle", Icon: "🚗"},
	AssetCategoryBankAccount:       {Label: "Bank Account", Slug: "bank-account", Icon: "🏦"},
	AssetCategoryInvestmentAccount: {Label: "Investment Account", Slug: "investment-account", Icon: "📈"},
	AssetCategoryRetirementAccount: {Label: "Retirement Account", Slug: "retirement-account", Icon: "🏖"},
	AssetCategoryCash:              {Label: "Cash", Slug: "cash", Icon: "💵"},
	AssetCategoryCryptocurrency:    {Label: "Cryptocurrency", Slug: "cryptocurrency", Icon: "🪙"},
	AssetCategoryBusinessInterest:  {Label: "Business Interest", Slug: "business-interest", Icon: "🏢"},
	AssetCategoryCollectibles:      {Label: "Collectibles", Slug: "collectibles", Icon: "🖼"},
	AssetCategoryJewelry:           {Label: "Jewelry", Slug: "jewelry", Icon: "💍"},
	AssetCategoryOther:             {Label: "Other", Slug: "other", Icon: "📦"},
}

var liabilityCategoryInfo = map[LiabilityCategory]CategoryInfo{
	LiabilityCategoryMortgage:     {Label: "Mortgage", Slug: "mortgage", Icon: "🏠"},
	LiabilityCategoryAutoLoan:     {Label: "Auto Loan", Slug: "auto-loan", Icon: "🚗"},
	LiabilityCategoryStudentLoan:  {Label: "Student Loan", Slug: "student-loan", Icon: "🎓"},
	LiabilityCategoryCreditCard:   {Label: "Credit Card", Slug: "credit-card", Icon: "💳"},
	LiabilityCategoryPersonalLoan: {Label: "Personal Loan", Slug: "personal-loan", Icon: "🤝"},
	LiabilityCategoryBusinessLoan: {Label: "Business Loan", Slug: "business-loan", Icon: "🏢"},
	LiabilityCategoryMedicalDebt:  {Label: "Medical Debt", Slug: "medical-debt", Icon: "🏥"},
	LiabilityCategoryOther:        {Label: "Other", Slug: "other", Icon: "📄"},
}

// IsValid reports whether c is one of the known asset categories
func (c AssetCategory) IsValid() bool {
	_, ok := assetCategoryInfo[c]
	return ok
}

// Info returns the static metadata of the category
func (c AssetCategory) Info() CategoryInfo {
	return assetCategoryInfo[c]
}

// IsValid reports whether c is one of the known liability categories
func (c LiabilityCategory) IsValid() bool {
	_, ok := liabilityCategoryInfo[c]
	return ok
}

// Info returns the static metadata of the category
func (c LiabilityCategory) Info() CategoryInfo {
	return liabilityCategoryInfo[c]
}

// ParseAssetCategory resolves a label ("Real Estate") or a slug ("real-estate")
// to an asset category. Matching is case-insensitive.
func ParseAssetCategory(s string) (AssetCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range AssetCategories {
		info := assetCategoryInfo[c]
		if strings.EqualFold(s, info.Label) || strings.EqualFold(s, info.Slug) {
			return c, nil
		}
	}
	return "", NewValidationError("category", "unknown asset category "+quote(s))
}

// ParseLiabilityCategory resolves a label or a slug to a liability category
func ParseLiabilityCategory(s string) (LiabilityCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range LiabilityCategories {
		info := liabilityCategoryInfo[c]
		if strings.EqualFold(s, info.Label) || strings.EqualFold(s, info.Slug) {
			return c, nil
		}
	}
	return "", NewValidationError("category", "unknown liability category "+quote(s))
}

// linkPolicy is the fixed asset -> liability compatibility table.
// The liability side uses its inverse.
var linkPolicy = map[AssetCategory]LiabilityCategory{
	AssetCategoryRealEstate:       LiabilityCategoryMortgage,
	AssetCategoryVehicle:          LiabilityCategoryAutoLoan,
	AssetCategoryBusinessInterest: LiabilityCategoryBusinessLoan,
}

// LinkableLiabilityCategory returns the liability category an asset of
// category c may be linked to. ok is false when c takes no debt link.
func LinkableLiabilityCategory(c AssetCategory) (LiabilityCategory, bool) {
	l, ok := linkPolicy[c]
	return l, ok
}

// LinkableAssetCategory is the inverse of LinkableLiabilityCategory
func LinkableAssetCategory(c LiabilityCategory) (AssetCategory, bool) {
	for a, l := range linkPolicy {
		if l == c {
			return a, true
		}
	}
	return "", false
}

// CanLink reports whether an asset of category a and a liability of
// category l may reference each other
func CanLink(a AssetCategory, l LiabilityCategory) bool {
	want, ok := linkPolicy[a]
	return ok && want == l
}

func quote(s string) string {
	return `"` + s + `"`
}
