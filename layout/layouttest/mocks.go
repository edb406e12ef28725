// Package layouttest provides hand-rolled mock collaborators for tests
// elsewhere in this module, following this codebase's plain testing.T
// style rather than a mocking framework.
package layouttest

import (
	"github.com/wudi/foliate/fonts"
	"github.com/wudi/foliate/imageinfo"
	"github.com/wudi/foliate/observability"
)

// MockFontProvider reports a fixed width for every glyph, letting tests
// assert on line-breaking behavior without depending on real AFM data.
type MockFontProvider struct {
	Width      float64
	UnitsPerEm int
}

func NewMockFontProvider() *MockFontProvider {
	return &MockFontProvider{Width: 500, UnitsPerEm: 1000}
}

func (m *MockFontProvider) GetMetrics(family string, bold, italic bool) (fonts.Metrics, error) {
	return fonts.Metrics{UnitsPerEm: m.UnitsPerEm, Ascent: 700, Descent: -200}, nil
}

func (m *MockFontProvider) HasGlyph(family string, bold, italic bool, ch rune) bool {
	return ch != 0
}

func (m *MockFontProvider) Advance(family string, bold, italic bool, ch rune) (float64, bool) {
	return m.Width, true
}

// MockImageProvider returns a fixed Info for every probe call, or Err
// if set, letting tests exercise the image-error-policy branches.
type MockImageProvider struct {
	Info Info
	Err  error
}

type Info = imageinfo.Info

func NewMockImageProvider(info Info) *MockImageProvider {
	return &MockImageProvider{Info: info}
}

func (m *MockImageProvider) Probe(data []byte) (Info, error) {
	if m.Err != nil {
		return Info{}, m.Err
	}
	return m.Info, nil
}

// MockLogger records every call instead of discarding it, so tests can
// assert a warning was emitted (spec §7's recoverable-error contract).
type MockLogger struct {
	Messages []string
}

func (m *MockLogger) Debug(msg string, fields ...observability.Field) { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) Info(msg string, fields ...observability.Field)  { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) Warn(msg string, fields ...observability.Field)  { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) Error(msg string, fields ...observability.Field) { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) With(fields ...observability.Field) observability.Logger { return m }
