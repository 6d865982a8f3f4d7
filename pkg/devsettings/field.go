package devsettings

type fieldState uint8

const (
	fieldOmitted fieldState = iota
	fieldReset
	fieldSet
)

// Field is one optional part of a source bundle update. The zero value is
// omitted: the stored value is left untouched. Reset restores the built-in
// default. Set stores a value; Set("") is the same as Reset.
type Field struct {
	state fieldState
	value string
}

func Omit() Field {
	return Field{}
}

func Reset() Field {
	return Field{state: fieldReset}
}

func Set(v string) Field {
	if v == "" {
		return Reset()
	}
	return Field{state: fieldSet, value: v}
}

func (f Field) IsOmitted() bool { return f.state == fieldOmitted }
func (f Field) IsReset() bool   { return f.state == fieldReset }

// Value returns the explicit value, ok=false for omitted or reset fields.
func (f Field) Value() (string, bool) {
	return f.value, f.state == fieldSet
}

func (f Field) String() string {
	switch f.state {
	case fieldReset:
		return "<reset>"
	case fieldSet:
		return f.value
	default:
		return "<omitted>"
	}
}

// SourceBundleUpdate carries the four url parts of ConfigureSourceBundleURL.
type SourceBundleUpdate struct {
	Host      Field
	Port      Field
	Path      Field
	Extension Field
}

// Empty reports whether every part is omitted.
func (u SourceBundleUpdate) Empty() bool {
	return u.Host.IsOmitted() && u.Port.IsOmitted() && u.Path.IsOmitted() && u.Extension.IsOmitted()
}

// UpdateFromParts sets every part from p. Empty parts become resets.
func UpdateFromParts(p URLParts) SourceBundleUpdate {
	return SourceBundleUpdate{
		Host:      Set(p.Host),
		Port:      Set(p.Port),
		Path:      Set(p.Path),
		Extension: Set(p.Extension),
	}
}
