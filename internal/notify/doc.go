// Package notify implements transient, self-dismissing notifications.
//
// Every Notification owns exactly one pending timer at a time and walks
// through its own lifecycle:
//
//	Show ──Transition──▶ Visible ──(Lifetime-Transition)──▶ Leaving ──Transition──▶ removed
//
// Notifications shown at the same time never share timers, so dismissing
// or expiring one has no effect on the others. The Center only keeps the
// ordered list of notifications currently on screen so a view can render
// them stacked.
//
// # Usage Example
//
//	center := notify.NewCenter()
//	center.OnChange = func() { program.Send(redrawMsg{}) }
//
//	center.Show("Password copied!", notify.KindSuccess)
//	center.Show("Failed to copy", notify.KindError)
//
//	for _, n := range center.Active() {
//	    fmt.Println(n.Kind, n.Phase(), n.Message)
//	}
package notify
