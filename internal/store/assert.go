package store

import (
	"campusevents/internal/event"
	"campusevents/internal/notification"
	"campusevents/internal/profile"
	"campusevents/internal/registration"
	"campusevents/internal/settings"
	"campusevents/internal/user"
)

// Both backends must satisfy every domain store interface.
var (
	_ user.Store         = (*Store)(nil)
	_ profile.Store      = (*Store)(nil)
	_ event.Store        = (*Store)(nil)
	_ registration.Store = (*Store)(nil)
	_ settings.Store     = (*Store)(nil)
	_ notification.Store = (*Store)(nil)

	_ user.Store         = (*Memory)(nil)
	_ profile.Store      = (*Memory)(nil)
	_ event.Store        = (*Memory)(nil)
	_ registration.Store = (*Memory)(nil)
	_ settings.Store     = (*Memory)(nil)
	_ notification.Store = (*Memory)(nil)
)
