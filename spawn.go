package main

import (
	"os"
	"os/exec"
	"path/filepath"
)

// cmdSpawn launches arg.v[0] with arg.v[1:] as arguments, detached
// from the WM process, mirroring dwm.c's spawn (which forks, resets
// SIGCHLD to default, and execvp's directly).
func (wm *WM) cmdSpawn(a arg) error {
	if len(a.v) == 0 {
		return nil
	}
	cmd := exec.Command(a.v[0], a.v[1:]...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if wm.conn != nil {
		cmd.Env = os.Environ()
	}
	if err := cmd.Start(); err != nil {
		wm.log.Warn("spawn failed", "cmd", a.v, "err", err)
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// runAutostart executes the two-stage startup dwm.c's runautostart
// runs before entering the event loop: a system-wide script first,
// then every regular file found directly under the per-user autostart
// directory, each fired in the background and not waited on. Mirrors
// dwm.c's runautostart, which opendir()s $HOME/.config/dwm and
// system()s each DT_REG entry rather than running one fixed filename.
func (wm *WM) runAutostart() {
	wm.runAutostartFile("/etc/dwm/autostart.sh")

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	userDir := filepath.Join(home, ".config", "dwm")
	entries, err := os.ReadDir(userDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		wm.runAutostartFile(filepath.Join(userDir, entry.Name()))
	}
}

// runAutostartFile launches a single autostart entry in the
// background, logging but not blocking on failure.
func (wm *WM) runAutostartFile(path string) {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return
	}
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		wm.log.Warn("autostart script failed to launch", "path", path, "err", err)
		return
	}
	go func(c *exec.Cmd, p string) {
		if err := c.Wait(); err != nil {
			wm.log.Debug("autostart script exited", "path", p, "err", err)
		}
	}(cmd, path)
}
