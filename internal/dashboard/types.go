package dashboard

// Summary holds the counters shown on the dashboard home.
type Summary struct {
	MailingLists       int
	ActiveMailingLists int
	Projects           int
	Rooms              int
}
