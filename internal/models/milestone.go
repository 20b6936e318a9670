package models

type Milestone struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Description string `gorm:"type:text" json:"description"`
}

// MilestoneCatalog is the fixed set of project phases. Tasks reference
// milestones by code so catalog edits never touch existing task rows.
var MilestoneCatalog = []Milestone{
	{Name: "Desktop Survey Design", Code: "desktop_survey_design"},
	{Name: "Network Health Checkup", Code: "network_health_checkup"},
	{Name: "HOTO-Existing", Code: "hoto_existing"},
	{Name: "Detailed Design", Code: "detailed_design"},
	{Name: "ROW (Right of Way)", Code: "row"},
	{Name: "IFC (Issued for Construction)", Code: "ifc"},
	{Name: "IC (Initial Construction)", Code: "ic"},
	{Name: "As-Built", Code: "as_built"},
	{Name: "HOTO (Final)", Code: "hoto_final"},
	{Name: "Field Survey", Code: "field_survey"},
}

// ValidMilestoneCode reports whether code exists in the catalog.
func ValidMilestoneCode(code string) bool {
	for _, m := range MilestoneCatalog {
		if m.Code == code {
			return true
		}
	}
	return false
}
