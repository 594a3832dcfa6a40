package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NO_COLOR", "TREESH_NO_COLOR", "TREESH_THEME", "TREESH_COLOR_SUCCESS"} {
		t.Setenv(key, "")
	}
}

func darkBackground(t *testing.T, dark bool) {
	t.Helper()
	orig := hasDarkBackground
	hasDarkBackground = func() bool { return dark }
	t.Cleanup(func() { hasDarkBackground = orig })
}

var semanticHelpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
	{"Accent", Accent},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	for _, tt := range semanticHelpers {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("show table")
			require.Equal(t, "show table", output)
			require.NotContains(t, output, "\x1b[")
		})
	}
	require.Equal(t, "x", HeaderStyle().Render("x"))
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	darkBackground(t, true)
	Init(true, nil)
	t.Cleanup(func() { Init(false, nil) })

	for _, tt := range semanticHelpers {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("show table")
			require.Contains(t, output, "show table")
			require.Contains(t, output, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, key := range []string{"NO_COLOR", "TREESH_NO_COLOR"} {
		t.Run(key, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(key, "1")

			Init(true, nil)

			require.False(t, Enabled())
			require.Equal(t, "test", Warning("test"))
		})
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	clearColorEnv(t)
	darkBackground(t, true)

	Init(false, nil)
	require.False(t, Enabled())
	require.Equal(t, ColorConfig{}, GetColors())

	Init(true, nil)
	require.True(t, Enabled())
	require.Equal(t, Themes["default-dark"], GetColors())

	Init(false, nil)
}

func TestResolveThemeName(t *testing.T) {
	darkBackground(t, false)
	require.Equal(t, "neon-light", ResolveThemeName("neon"))
	require.Equal(t, "mono-dark", ResolveThemeName("mono-dark"))

	darkBackground(t, true)
	require.Equal(t, "default-dark", ResolveThemeName("default"))
}

func TestLoadColorConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		cfg  map[string]string
		want func() ColorConfig
	}{
		{
			name: "default theme",
			want: func() ColorConfig { return Themes["default-dark"] },
		},
		{
			name: "theme from config",
			cfg:  map[string]string{"theme": "neon"},
			want: func() ColorConfig { return Themes["neon-dark"] },
		},
		{
			name: "env theme wins over config",
			env:  map[string]string{"TREESH_THEME": "mono-light"},
			cfg:  map[string]string{"theme": "neon"},
			want: func() ColorConfig { return Themes["mono-light"] },
		},
		{
			name: "unknown theme falls back",
			cfg:  map[string]string{"theme": "sepia"},
			want: func() ColorConfig { return Themes["default-dark"] },
		},
		{
			name: "config override",
			cfg:  map[string]string{"color_success": "99"},
			want: func() ColorConfig {
				c := Themes["default-dark"]
				c.Success = "99"
				return c
			},
		},
		{
			name: "env override wins over config",
			env:  map[string]string{"TREESH_COLOR_SUCCESS": "42"},
			cfg:  map[string]string{"color_success": "99"},
			want: func() ColorConfig {
				c := Themes["default-dark"]
				c.Success = "42"
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			darkBackground(t, true)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			require.Equal(t, tt.want(), LoadColorConfig(tt.cfg))
		})
	}
}

func TestEveryBaseThemeHasBothVariants(t *testing.T) {
	for _, base := range BaseThemeNames {
		for _, variant := range []string{"-dark", "-light"} {
			c, ok := Themes[base+variant]
			require.True(t, ok, "missing %s%s", base, variant)
			require.NotEmpty(t, c.Success)
			require.NotEmpty(t, c.Border)
		}
	}
}

func TestNopStyler(t *testing.T) {
	var s NopStyler
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Error("x"))
	require.False(t, strings.Contains(s.Header("x"), "\x1b"))
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()

	require.Equal(t, []string{"default", "neon", "mono"}, names[:3])
	require.Len(t, names, len(BaseThemeNames)+len(Themes))
	for _, name := range names[3:] {
		require.Contains(t, Themes, name)
	}

	require.True(t, IsThemeName("neon"))
	require.True(t, IsThemeName("mono-light"))
	require.False(t, IsThemeName("solarized"))
}
