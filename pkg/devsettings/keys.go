package devsettings

import (
	"fmt"
	"strings"

	"office-addin-dev-settings/pkg/store"
)

// Setting is the stored value name of one developer setting.
type Setting string

const (
	SettingUseDirectDebugger     Setting = "UseDirectDebugger"
	SettingUseWebDebugger        Setting = "UseWebDebugger"
	SettingDebuggingMethod       Setting = "DebuggingMethod"
	SettingUseLiveReload         Setting = "UseLiveReload"
	SettingSourceBundleHost      Setting = "SourceBundleHost"
	SettingSourceBundlePort      Setting = "SourceBundlePort"
	SettingSourceBundlePath      Setting = "SourceBundlePath"
	SettingSourceBundleExtension Setting = "SourceBundleExtension"
)

// Settings lists every setting owned by an add-in.
var Settings = []Setting{
	SettingUseDirectDebugger,
	SettingUseWebDebugger,
	SettingDebuggingMethod,
	SettingUseLiveReload,
	SettingSourceBundleHost,
	SettingSourceBundlePort,
	SettingSourceBundlePath,
	SettingSourceBundleExtension,
}

const keySeparator = `\`

// Codec maps (add-in id, setting) pairs to store keys under Root. Each
// add-in gets its own key path; the setting is the value name.
type Codec struct {
	Root string
}

func NewCodec(root string) Codec {
	root = strings.TrimRight(root, keySeparator)
	if root == "" {
		root = store.DefaultDeveloperKey
	}
	return Codec{Root: root}
}

// ValidateAddinID rejects ids that are blank or contain the key separator;
// both would break the one-key-path-per-add-in mapping.
func ValidateAddinID(addinID string) error {
	if strings.TrimSpace(addinID) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddinID)
	}
	if strings.Contains(addinID, keySeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidAddinID, addinID, keySeparator)
	}
	return nil
}

func (c Codec) Key(addinID string, s Setting) (store.Key, error) {
	if err := ValidateAddinID(addinID); err != nil {
		return store.Key{}, err
	}
	return store.Key{Path: c.Root + keySeparator + addinID, Name: string(s)}, nil
}

// Keys returns the key of every setting owned by addinID.
func (c Codec) Keys(addinID string) ([]store.Key, error) {
	keys := make([]store.Key, 0, len(Settings))
	for _, s := range Settings {
		k, err := c.Key(addinID, s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Decode reverses Key. ok is false for keys this codec never produces.
func (c Codec) Decode(k store.Key) (addinID string, s Setting, ok bool) {
	addinID, found := strings.CutPrefix(k.Path, c.Root+keySeparator)
	if !found || ValidateAddinID(addinID) != nil {
		return "", "", false
	}
	for _, known := range Settings {
		if string(known) == k.Name {
			return addinID, known, true
		}
	}
	return "", "", false
}
