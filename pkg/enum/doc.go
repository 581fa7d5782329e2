// Package enum parses names into enum-like values.
//
// Go has no enum reflection, so callers pass the declared members explicitly.
// Any comparable type with a String method works:
//
//	type Status int
//
//	const (
//		Draft Status = iota
//		Published
//	)
//
//	func (s Status) String() string { return [...]string{"Draft", "Published"}[s] }
//
//	var statuses = []Status{Draft, Published}
//
//	enum.Parse("Published", statuses, Draft)                    // Published
//	enum.Parse("published", statuses, Draft)                    // Draft (case-sensitive)
//	enum.Parse("published", statuses, Draft, enum.IgnoreCase()) // Published
//	enum.Lookup("Archived", statuses)                           // Draft (zero value), false
package enum
