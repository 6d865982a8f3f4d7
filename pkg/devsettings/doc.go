// Package devsettings manages the per-user developer settings of an Office
// add-in: remote debugging (and its method), live reload, and the parts of
// the URL the add-in loads its source bundle from.
//
// Settings are sparse values keyed by add-in id in a store.SettingsStore.
// Every operation is a fresh read-modify-write against the store; nothing is
// cached between calls. An add-in that never had settings written reads as
// all defaults.
//
// # Usage
//
// Through the current-user registry (Windows only):
//
//	if err := devsettings.EnableDebugging(addinID, true, devsettings.MethodDirect); err != nil {
//	    return err
//	}
//
// Against another store, for example in tests:
//
//	c := devsettings.NewClient(store.NewMemoryStore(), devsettings.WithPlatform("windows"))
//	err := c.ConfigureSourceBundleURL(addinID, devsettings.SourceBundleUpdate{
//	    Host: devsettings.Set("devbox"),
//	    Port: devsettings.Reset(),
//	})
//
// # Errors
//
// Failures match one of the sentinel errors with errors.Is. Store failures
// are *StoreError values that list which settings were written before the
// failure, so callers can detect a partial update.
package devsettings
