package scoring

// Default PERS item codes, grouped by subscale. The grouping is
// informational only: scoring treats every item uniformly.
var (
	ItemsCommunication = []string{"comm_1", "comm_2", "comm_3", "comm_4", "comm_5", "comm_6"}
	ItemsRespect       = []string{"resp_1", "resp_2", "resp_3", "resp_4", "resp_5"}
	ItemsPartnership   = []string{"part_1", "part_2", "part_3", "part_4", "part_5", "part_6"}
	ItemsBenefit       = []string{"bene_1", "bene_2", "bene_3", "bene_4", "bene_5"}
	ItemsContribution  = []string{"cont_1", "cont_2", "cont_3", "cont_4", "cont_5"}
)

// DefaultItems returns the 27 items of the full instrument in presentation
// order. Callers get a fresh slice each time.
func DefaultItems() []string {
	groups := [][]string{
		ItemsCommunication,
		ItemsRespect,
		ItemsPartnership,
		ItemsBenefit,
		ItemsContribution,
	}
	out := make([]string, 0, 27)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
