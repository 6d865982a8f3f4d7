package devsettings

import (
	"strconv"

	"office-addin-dev-settings/pkg/store"
)

// Manager performs read-modify-write operations on one add-in's settings.
// It holds no state between calls; concurrent callers are not serialized.
type Manager struct {
	store  store.SettingsStore
	codec  Codec
	logger Logger
}

func NewManager(st store.SettingsStore, opts ...Option) *Manager {
	o := buildOptions(opts)
	return &Manager{
		store:  st,
		codec:  NewCodec(o.root),
		logger: o.logger,
	}
}

// Codec returns the key codec in use.
func (m *Manager) Codec() Codec {
	return m.codec
}

type assignment struct {
	setting Setting
	value   string
	remove  bool
	// integer values go to the store as numbers when the session supports it.
	integer bool
}

func flag(s Setting, on bool) assignment {
	return assignment{setting: s, value: formatBool(on), integer: true}
}

// txn is one operation's view of the store: an open session plus the
// bookkeeping needed to report partial writes.
type txn struct {
	m       *Manager
	op      string
	addinID string
	sess    store.Session
	written []Setting
}

func (m *Manager) begin(op, addinID string) (*txn, error) {
	if err := ValidateAddinID(addinID); err != nil {
		return nil, err
	}
	sess, err := m.store.Open()
	if err != nil {
		return nil, &StoreError{Op: op, AddinID: addinID, Kind: ErrStoreUnavailable, Err: err}
	}
	m.logger.Debugf("%s %s: store opened", op, addinID)
	return &txn{m: m, op: op, addinID: addinID, sess: sess}, nil
}

func (t *txn) close() {
	if err := t.sess.Close(); err != nil {
		t.m.logger.Debugf("%s %s: closing store: %v", t.op, t.addinID, err)
	}
}

func (t *txn) read(s Setting) (string, bool, error) {
	k, err := t.m.codec.Key(t.addinID, s)
	if err != nil {
		return "", false, err
	}
	v, ok, err := t.sess.Read(k)
	if err != nil {
		return "", false, &StoreError{Op: t.op, AddinID: t.addinID, Kind: ErrStoreReadFailed, Failed: s, Err: err}
	}
	return v, ok, nil
}

// apply runs the assignments in order and stops at the first failure.
func (t *txn) apply(plan []assignment) error {
	for _, a := range plan {
		k, err := t.m.codec.Key(t.addinID, a.setting)
		if err != nil {
			return err
		}
		err = t.put(k, a)
		if err != nil {
			return &StoreError{
				Op:      t.op,
				AddinID: t.addinID,
				Kind:    ErrStoreWriteFailed,
				Written: append([]Setting(nil), t.written...),
				Failed:  a.setting,
				Err:     err,
			}
		}
		if a.remove {
			t.m.logger.Debugf("%s %s: deleted %s", t.op, t.addinID, k)
		} else {
			t.m.logger.Debugf("%s %s: %s = %q", t.op, t.addinID, k, a.value)
		}
		t.written = append(t.written, a.setting)
	}
	return nil
}

func (t *txn) put(k store.Key, a assignment) error {
	if a.remove {
		return t.sess.Delete(k)
	}
	if iw, ok := t.sess.(store.IntegerWriter); ok && a.integer {
		n, err := strconv.ParseUint(a.value, 10, 32)
		if err != nil {
			return err
		}
		return iw.WriteInteger(k, uint32(n))
	}
	return t.sess.Write(k, a.value)
}

// Clear deletes every setting of addinID. Missing values are not an error.
func (m *Manager) Clear(addinID string) error {
	t, err := m.begin("clear", addinID)
	if err != nil {
		return err
	}
	defer t.close()

	keys, err := m.codec.Keys(addinID)
	if err != nil {
		return err
	}
	plan := make([]assignment, 0, len(keys))
	for _, k := range keys {
		_, s, ok := m.codec.Decode(k)
		if !ok {
			continue
		}
		plan = append(plan, assignment{setting: s, remove: true})
	}
	return t.apply(plan)
}

// EnableDebugging turns debugging on with method, or off. Disabling keeps
// the stored method so a later enable with MethodUnspecified restores it.
func (m *Manager) EnableDebugging(addinID string, enable bool, method DebuggingMethod) error {
	method, err := ParseDebuggingMethod(string(method))
	if err != nil {
		return err
	}

	op := "enable-debugging"
	if !enable {
		op = "disable-debugging"
	}
	t, err := m.begin(op, addinID)
	if err != nil {
		return err
	}
	defer t.close()

	if !enable {
		return t.apply([]assignment{
			flag(SettingUseDirectDebugger, false),
			flag(SettingUseWebDebugger, false),
		})
	}

	if method == MethodUnspecified {
		if method, err = t.storedMethod(); err != nil {
			return err
		}
	}
	return t.apply([]assignment{
		{setting: SettingDebuggingMethod, value: string(method)},
		flag(SettingUseDirectDebugger, method == MethodDirect),
		flag(SettingUseWebDebugger, method == MethodWeb),
	})
}

func (m *Manager) DisableDebugging(addinID string) error {
	return m.EnableDebugging(addinID, false, MethodUnspecified)
}

func (m *Manager) EnableLiveReload(addinID string, enable bool) error {
	op := "enable-live-reload"
	if !enable {
		op = "disable-live-reload"
	}
	t, err := m.begin(op, addinID)
	if err != nil {
		return err
	}
	defer t.close()

	return t.apply([]assignment{flag(SettingUseLiveReload, enable)})
}

func (m *Manager) DisableLiveReload(addinID string) error {
	return m.EnableLiveReload(addinID, false)
}

// ConfigureSourceBundleURL writes each part of u that is not omitted. A
// reset part is written as its built-in default. Every part is validated
// before anything is written.
func (m *Manager) ConfigureSourceBundleURL(addinID string, u SourceBundleUpdate) error {
	if err := ValidateAddinID(addinID); err != nil {
		return err
	}
	if port, ok := u.Port.Value(); ok {
		if err := ValidatePort(port); err != nil {
			return err
		}
	}

	plan := make([]assignment, 0, 4)
	add := func(s Setting, f Field, def string, normalize func(string) string) {
		if f.IsOmitted() {
			return
		}
		v := def
		if explicit, ok := f.Value(); ok {
			v = normalize(explicit)
		}
		plan = append(plan, assignment{setting: s, value: v})
	}
	same := func(s string) string { return s }
	add(SettingSourceBundleHost, u.Host, DefaultHost, same)
	add(SettingSourceBundlePort, u.Port, DefaultPort, same)
	add(SettingSourceBundlePath, u.Path, DefaultPath, normalizePath)
	add(SettingSourceBundleExtension, u.Extension, DefaultExtension, NormalizeExtension)
	if len(plan) == 0 {
		return nil
	}

	t, err := m.begin("source-bundle-url", addinID)
	if err != nil {
		return err
	}
	defer t.close()
	return t.apply(plan)
}

// Get reads the settings of addinID with defaults applied.
func (m *Manager) Get(addinID string) (DevSettings, error) {
	t, err := m.begin("get", addinID)
	if err != nil {
		return DevSettings{}, err
	}
	defer t.close()

	values := make(map[Setting]string, len(Settings))
	for _, s := range Settings {
		v, ok, err := t.read(s)
		if err != nil {
			return DevSettings{}, err
		}
		if ok {
			values[s] = v
		}
	}

	direct := parseBool(values[SettingUseDirectDebugger])
	web := parseBool(values[SettingUseWebDebugger])
	method, err := ParseDebuggingMethod(values[SettingDebuggingMethod])
	if err != nil || method == MethodUnspecified {
		// Settings written by older tooling only carry the Use*Debugger layout.
		method = DefaultDebuggingMethod
		if direct {
			method = MethodDirect
		}
	}

	return DevSettings{
		DebuggingEnabled:  direct || web,
		DebuggingMethod:   method,
		LiveReloadEnabled: parseBool(values[SettingUseLiveReload]),
		SourceBundleURL: ResolveURL(URLParts{
			Host:      values[SettingSourceBundleHost],
			Port:      values[SettingSourceBundlePort],
			Path:      values[SettingSourceBundlePath],
			Extension: values[SettingSourceBundleExtension],
		}),
	}, nil
}

// storedMethod returns the last stored debugging method, or the default.
func (t *txn) storedMethod() (DebuggingMethod, error) {
	v, ok, err := t.read(SettingDebuggingMethod)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultDebuggingMethod, nil
	}
	method, err := ParseDebuggingMethod(v)
	if err != nil || method == MethodUnspecified {
		t.m.logger.Debugf("%s %s: ignoring stored debugging method %q", t.op, t.addinID, v)
		return DefaultDebuggingMethod, nil
	}
	return method, nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// parseBool treats absent or unparsable values as false.
func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
