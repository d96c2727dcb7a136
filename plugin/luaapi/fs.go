package luaapi

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	lua "github.com/yuin/gopher-lua"
)

// FS abstracts the file moves scripts may request. Tests substitute a
// recording implementation.
type FS interface {
	Rename(oldpath, newpath string) error
}

// osFS renames on the real filesystem. A rename across filesystem
// boundaries fails with EXDEV; it is retried as a copy followed by a
// remove.
type osFS struct{}

func (osFS) Rename(oldpath, newpath string) error {
	err := os.Rename(oldpath, newpath)
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.EXDEV {
		return copyAndRemove(oldpath, newpath)
	}
	return err
}

func copyAndRemove(oldpath, newpath string) error {
	in, err := os.Open(oldpath)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(newpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(newpath)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(oldpath)
}

// glibRename moves a file. On success it returns 1; on failure it
// returns nil plus a message carrying the system error code:
//
//	local ok, err = app.glib_rename("/tmp/a.xopp", "/tmp/b.xopp")
func (a *API) glibRename(L *lua.LState) int {
	from := L.CheckString(1)
	to := L.CheckString(2)
	if err := a.fs.Rename(from, to); err != nil {
		var code syscall.Errno
		errors.As(err, &code)
		L.Push(lua.LNil)
		L.Push(lua.LString(fmt.Sprintf("%s (error code: %d)", err, code)))
		return 2
	}
	L.Push(lua.LNumber(1))
	return 1
}
