package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rstms/physkey/keycode"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with fresh flag values and returns
// what it wrote to stdout.
func runCommand(t *testing.T, args ...string) string {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	rootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		err := flag.Value.Set(flag.DefValue)
		require.Nil(t, err)
		flag.Changed = false
	})

	r, w, err := os.Pipe()
	require.Nil(t, err)
	stdout := os.Stdout
	os.Stdout = w
	output := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		output <- data
	}()

	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	os.Stdout = stdout
	w.Close()
	data := <-output
	r.Close()
	require.Nil(t, err)
	return string(data)
}

func TestOptionKey(t *testing.T) {
	require.Equal(t, "physkey.platform", OptionKey(rootCmd, "platform"))
	require.Equal(t, "physkey.fallback", OptionKey(rootCmd, "fallback"))
}

func TestFormatJSON(t *testing.T) {
	text := FormatJSON([]EncodeResult{{Input: "65", Key: "Native(65)", Code: "0x00070004", Name: "KeyA", Mapped: true}})
	require.Contains(t, text, `"Code": "0x00070004"`)
	require.Contains(t, text, `"Mapped": true`)
}

func TestExecuteEncode(t *testing.T) {
	out := runCommand(t, "--platform", "windows-vk", "encode", "65", "VolumeUp")
	require.Equal(t, "windows-vk", translator.Table().Name())
	require.Equal(t, uint32(0x00070004), uint32(translator.Encode(keycode.Native(65))))
	var results []EncodeResult
	err := json.Unmarshal([]byte(out), &results)
	require.Nil(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "0x00070004", results[0].Code)
	require.Equal(t, "KeyA", results[0].Name)
	require.Equal(t, "VolumeUp", results[1].Key)
	require.Equal(t, "0x00070080", results[1].Code)
}

func TestExecuteEncodePowerRow(t *testing.T) {
	out := runCommand(t, "--platform", "windows", "encode", "Power")
	var results []EncodeResult
	err := json.Unmarshal([]byte(out), &results)
	require.Nil(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Native(57438)", results[0].Key)
	require.Equal(t, "0x00070066", results[0].Code)
	require.True(t, results[0].Mapped)
}

func TestExecuteDecode(t *testing.T) {
	out := runCommand(t, "--platform", "windows", "decode", "0x00070080", "0x00070004", "0x00ff00ff")
	var results []DecodeResult
	err := json.Unmarshal([]byte(out), &results)
	require.Nil(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "VolumeUp", results[0].Special)
	require.Equal(t, "VolumeUp", results[0].Key)
	require.True(t, results[0].Mapped)

	require.Equal(t, "", results[1].Special)
	require.Equal(t, uint32(30), results[1].Native)
	require.Equal(t, "KeyA", results[1].Name)

	require.Equal(t, uint32(0), results[2].Native)
	require.False(t, results[2].Mapped)
}

func TestExecuteDecodeFallbackRaw(t *testing.T) {
	out := runCommand(t, "--platform", "windows", "--fallback", "raw", "decode", "0x00ff00ff")
	var results []DecodeResult
	err := json.Unmarshal([]byte(out), &results)
	require.Nil(t, err)
	require.Len(t, results, 1)
	require.Equal(t, uint32(0x00ff00ff), results[0].Native)
	require.Equal(t, "Native(16711935)", results[0].Key)
	require.False(t, results[0].Mapped)
	require.Equal(t, keycode.FallbackRaw, translator.Fallback())
}

func TestExecuteDecodeText(t *testing.T) {
	out := runCommand(t, "--platform", "macos", "--text", "decode", "0x000c0072")
	require.Equal(t, "0x000c0072 IlluminationToggle IlluminationToggle\n", out)
}

func TestExecuteTable(t *testing.T) {
	out := runCommand(t, "--platform", "windows-vk", "table")
	var dump TableDump
	err := json.Unmarshal([]byte(out), &dump)
	require.Nil(t, err)
	require.Equal(t, "windows-vk", dump.Table)
	require.Equal(t, "windows", dump.Platform)
	require.Len(t, dump.Specials, 6)
	shadowed := []uint32{}
	for _, row := range dump.Rows {
		if row.Shadowed {
			shadowed = append(shadowed, row.Native)
		}
	}
	require.Equal(t, []uint32{0x11, 0x10, 0x12}, shadowed)
}

func TestExecuteTableText(t *testing.T) {
	out := runCommand(t, "--platform", "windows-vk", "--text", "table")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	marked := 0
	for _, line := range lines {
		if strings.HasSuffix(line, " (shadowed)") {
			marked++
			require.Contains(t, line, "Left")
		}
	}
	require.Equal(t, 3, marked)
}

func TestExecutePlatforms(t *testing.T) {
	out := runCommand(t, "--text", "platforms")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(keycode.TableNames()))
	for i, name := range keycode.TableNames() {
		fields := strings.Fields(lines[i])
		require.Equal(t, name, fields[0])
		if name == keycode.HostTableName() {
			require.Equal(t, "*", fields[len(fields)-1])
		} else {
			require.NotEqual(t, "*", fields[len(fields)-1])
		}
	}
}

func TestExecuteText(t *testing.T) {
	out := runCommand(t, "--platform", "windows-vk", "text", `Hi\n`)
	var results []StrokeResult
	err := json.Unmarshal([]byte(out), &results)
	require.Nil(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "H", results[0].Char)
	require.Equal(t, "0x0007000b", results[0].Key.Code)
	require.Equal(t, uint32(0x48), results[0].Key.Native)
	require.Len(t, results[0].Modifiers, 1)
	require.Equal(t, uint32(0xa0), results[0].Modifiers[0].Native)
	require.True(t, results[0].Modifiers[0].Mapped)

	require.Equal(t, "i", results[1].Char)
	require.Empty(t, results[1].Modifiers)

	require.Equal(t, "\n", results[2].Char)
	require.Equal(t, "0x00070028", results[2].Key.Code)
}
