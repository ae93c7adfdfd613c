package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fasthash/source"
)

const (
	helloXX64      = "26c7827d889f6da3"
	helloworldXX64 = "80111601aa1c6a4f"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(t.Context(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSum_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	writeFile(t, a, "hello")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "helloworld")

	code, out, _ := runCLI(t, "", "sum", "-a", "xx64", a)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, helloXX64+"  "+a+"\n", out)

	code, out, _ = runCLI(t, "", "sum", "-a", "xx64", dir)
	assert.Equal(t, exitOK, code)
	assert.Equal(t,
		helloXX64+"  "+a+"\n"+
			helloworldXX64+"  "+filepath.Join(dir, "sub", "b.txt")+"\n",
		out)
}

func TestSum_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, "hello", "sum", "-a", "xx64")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, helloXX64+"  -\n", out)

	code, out, _ = runCLI(t, "hello", "sum", "-a", "xx64", "-seed", "123", "-")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "284087bb1641ee7b  -\n", out)
}

func TestSum_Errors(t *testing.T) {
	code, _, errOut := runCLI(t, "", "sum", "-a", "nope")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "nope")

	code, _, _ = runCLI(t, "", "sum", "-a", "xx64", "-seed", "1,2")
	assert.Equal(t, exitUsage, code)

	code, _, errOut = runCLI(t, "", "sum", "-a", "xx64", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "missing")
}

func TestSum_EnvAlgorithm(t *testing.T) {
	t.Setenv("FASTHASH_ALGORITHM", "xx64")
	code, out, _ := runCLI(t, "hello", "sum")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, helloXX64+"  -\n", out)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "hello")
	writeFile(t, b, "helloworld")

	code, out, _ := runCLI(t, "", "sum", "-a", "xx64", a, b)
	require.Equal(t, exitOK, code)

	list := filepath.Join(dir, "sums.txt")
	writeFile(t, list, out)

	code, out, _ = runCLI(t, "", "verify", "-a", "xx64", list)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, a+": OK\n"+b+": OK\n", out)

	writeFile(t, b, "changed")
	code, out, errOut := runCLI(t, "", "verify", "-a", "xx64", "-q", list)
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, b+": FAILED\n", out)
	assert.Contains(t, errOut, "1 of 2")
}

func TestList(t *testing.T) {
	code, out, _ := runCLI(t, "", "list")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "xx64")
	assert.Contains(t, out, "murmur3_128")
	assert.Contains(t, out, "SEEDED STREAMING")

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "xxh3_64":
			assert.Equal(t, []string{"native", "buffered"}, fields[3:])
		case "xx64":
			assert.Equal(t, []string{"native", "native"}, fields[3:])
		case "sea64":
			assert.Equal(t, []string{"buffered", "-"}, fields[3:])
		}
	}
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI(t, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "usage")

	code, _, _ = runCLI(t, "", "bogus")
	assert.Equal(t, exitUsage, code)
}

func TestSplitURI(t *testing.T) {
	scheme, bucket, key, ok := splitURI("s3://bucket/dir/key.bin")
	assert.True(t, ok)
	assert.Equal(t, "s3", scheme)
	assert.Equal(t, "bucket", bucket)
	assert.Equal(t, "dir/key.bin", key)

	_, bucket, key, ok = splitURI("minio://bucket")
	assert.True(t, ok)
	assert.Equal(t, "bucket", bucket)
	assert.Empty(t, key)

	_, _, _, ok = splitURI("/tmp/file")
	assert.False(t, ok)
	_, _, _, ok = splitURI("http://host/file")
	assert.False(t, ok)
}

func TestSum_Remote(t *testing.T) {
	mem := source.NewMemoryStore()
	require.NoError(t, mem.Put(t.Context(), "dir/a", []byte("hello")))
	require.NoError(t, mem.Put(t.Context(), "dir/b", []byte("helloworld")))

	dials := 0
	r := newResolver()
	r.newRemote = func(_ context.Context, scheme, bucket string) (source.Store, error) {
		dials++
		assert.Equal(t, "s3", scheme)
		assert.Equal(t, "bucket", bucket)
		return mem, nil
	}

	var out, errOut bytes.Buffer
	c := &cli{stdin: strings.NewReader(""), stdout: &out, stderr: &errOut, resolver: r}
	code := c.sum(t.Context(), []string{"-a", "xx64", "s3://bucket/dir/", "s3://bucket/dir/a"})

	assert.Equal(t, exitOK, code, errOut.String())
	assert.Equal(t,
		helloXX64+"  s3://bucket/dir/a\n"+
			helloworldXX64+"  s3://bucket/dir/b\n"+
			helloXX64+"  s3://bucket/dir/a\n",
		out.String())
	assert.Equal(t, 1, dials)
}
