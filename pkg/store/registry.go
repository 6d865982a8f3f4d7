package store

// DefaultDeveloperKey is the current-user registry key under which Office
// reads per add-in developer settings.
const DefaultDeveloperKey = `SOFTWARE\Microsoft\Office\16.0\Wef\Developer`

// RegistryStore reads and writes string values under HKEY_CURRENT_USER.
// Key paths are relative to that hive.
type RegistryStore struct{}

func NewRegistryStore() *RegistryStore {
	return &RegistryStore{}
}

func (r *RegistryStore) Open() (Session, error) {
	return openRegistrySession()
}
