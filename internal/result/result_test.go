package result_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/openkeychain/keychain-tui/internal/result"
	"github.com/stretchr/testify/require"
)

func TestNotification(t *testing.T) {
	for _, testCase := range []struct {
		result  result.OperationResult
		message string
		success bool
	}{
		{result.OperationResult{Operation: "import", Count: 2}, "Import successful (2)", true},
		{result.OperationResult{}, "Operation successful", true},
		{result.OperationResult{Operation: "export", Code: result.CodeWarning, Log: []result.LogEntry{
			{Level: result.LevelWarn, Message: "old"},
			{Level: result.LevelWarn, Message: "expired subkey skipped"},
		}}, "Export finished with warnings: expired subkey skipped", true},
		{result.OperationResult{Operation: "certify", Code: result.CodeError, Log: []result.LogEntry{
			{Level: result.LevelError, Message: "no secret key"},
		}}, "Certify failed: no secret key", false},
		{result.OperationResult{Operation: "upload", Code: result.CodeError}, "Upload failed", false},
		{result.OperationResult{Operation: "delete", Code: result.CodeCancelled}, "Delete cancelled", false},
		{result.OperationResult{Operation: "überprüfung"}, "Überprüfung successful", true},
	} {
		require.Equal(t, testCase.message, testCase.result.Notification())
		require.True(t, utf8.ValidString(testCase.result.Notification()))
		require.Equal(t, testCase.success, testCase.result.Success())
	}
}

func TestDecode(t *testing.T) {
	decoded, err := result.Decode(strings.NewReader(`{"operation":"import","count":3}`))
	require.NoError(t, err)
	require.Equal(t, 3, decoded.Count)

	_, err = result.Decode(strings.NewReader(`{"code":9}`))
	require.Error(t, err)

	_, err = result.Decode(strings.NewReader(`not json`))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"operation":"import","code":2,"log":[{"level":"error","message":"bad file"}]}`), 0o600))

	loaded, err := result.Load(path)
	require.NoError(t, err)
	require.False(t, loaded.Success())

	_, err = result.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
