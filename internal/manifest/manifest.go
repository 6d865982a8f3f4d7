// Package manifest reads the identity of an Office add-in from its manifest:
// the XML add-in-only manifest (<OfficeApp><Id>) or the JSON unified
// manifest ("id").
package manifest

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingID = errors.New("manifest has no add-in id")
	ErrInvalidID = errors.New("manifest add-in id is not a GUID")
	ErrFormat    = errors.New("unrecognized manifest format")
)

type Manifest struct {
	Path        string
	ID          string
	Version     string
	DisplayName string
}

type xmlManifest struct {
	XMLName     xml.Name `xml:"OfficeApp"`
	ID          string   `xml:"Id"`
	Version     string   `xml:"Version"`
	DisplayName struct {
		DefaultValue string `xml:"DefaultValue,attr"`
	} `xml:"DisplayName"`
}

type jsonManifest struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	Name    struct {
		Short string `json:"short"`
	} `json:"name"`
}

// Read parses the manifest at path and validates its id.
func Read(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse decodes manifest bytes. ext (".xml" or ".json") is a hint; without
// it the format is sniffed from the first non-space byte.
func Parse(b []byte, ext string) (*Manifest, error) {
	var m *Manifest
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		m, err = parseJSON(b)
	case ".xml":
		m, err = parseXML(b)
	default:
		trimmed := bytes.TrimSpace(b)
		switch {
		case bytes.HasPrefix(trimmed, []byte("{")):
			m, err = parseJSON(b)
		case bytes.HasPrefix(trimmed, []byte("<")):
			m, err = parseXML(b)
		default:
			return nil, ErrFormat
		}
	}
	if err != nil {
		return nil, err
	}

	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		return nil, ErrMissingID
	}
	if _, err := uuid.Parse(m.ID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, m.ID)
	}
	return m, nil
}

func parseXML(b []byte) (*Manifest, error) {
	var x xmlManifest
	if err := xml.Unmarshal(b, &x); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return &Manifest{
		ID:          x.ID,
		Version:     strings.TrimSpace(x.Version),
		DisplayName: x.DisplayName.DefaultValue,
	}, nil
}

func parseJSON(b []byte) (*Manifest, error) {
	var j jsonManifest
	if err := json.Unmarshal(b, &j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return &Manifest{ID: j.ID, Version: j.Version, DisplayName: j.Name.Short}, nil
}

// AddinID returns the add-in id declared by the manifest at path.
func AddinID(path string) (string, error) {
	m, err := Read(path)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}
