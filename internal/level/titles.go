package level

// Title is the display band for a level range.
type Title string

const (
	TitleBeginner     Title = "beginner"
	TitleApprentice   Title = "apprentice"
	TitlePractitioner Title = "practitioner"
	TitleExpert       Title = "expert"
	TitleMaster       Title = "master"
	TitleGrandmaster  Title = "grandmaster"
	TitleLegend       Title = "legend"
)

// TitleForLevel maps a level onto its title band.
func TitleForLevel(level int) Title {
	switch {
	case level >= 50:
		return TitleLegend
	case level >= 41:
		return TitleGrandmaster
	case level >= 31:
		return TitleMaster
	case level >= 21:
		return TitleExpert
	case level >= 11:
		return TitlePractitioner
	case level >= 6:
		return TitleApprentice
	default:
		return TitleBeginner
	}
}
