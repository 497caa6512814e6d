package mailinglist

import "strings"

// Derive returns the items passing the search and status filters, in order.
// It is pure: items is never modified and the result never aliases it.
//
// An item passes when searchText is empty or is contained, case-insensitively,
// in its name or contact address; and statusFilter is empty or equals its status.
func Derive(items []ListItem, searchText string, statusFilter Status) []ListItem {
	q := strings.ToLower(searchText)
	out := make([]ListItem, 0, len(items))
	for _, it := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.ContactAddress), q) {
			continue
		}
		if statusFilter != "" && it.Status != statusFilter {
			continue
		}
		out = append(out, it)
	}
	return out
}
