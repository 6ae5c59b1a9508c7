package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net"
	"time"
)

// ErrAlreadyRunning indicates another timer window is already open.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minGuardPort = 20000
	maxGuardPort = 39999

	activateRequest = "activate\n"
	requestTimeout  = time.Second
)

// InstanceGuard owns the localhost port that marks a running timer. A second
// launch connects to it and asks the running timer to come to the front.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance claims the port derived from appName. If a timer
// already holds it the error wraps ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", guardAddress(appName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// ActivateRunning asks the timer holding appName's port to show its window.
func ActivateRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", guardAddress(appName), requestTimeout)
	if err != nil {
		return fmt.Errorf("reach running timer: %w", err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(requestTimeout))
	if _, err := io.WriteString(conn, activateRequest); err != nil {
		return fmt.Errorf("send activate request: %w", err)
	}
	return nil
}

// Serve calls onActivate for each activate request until the guard is released.
func (guard *InstanceGuard) Serve(onActivate func()) {
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(requestTimeout))
		request, _ := bufio.NewReader(conn).ReadString('\n')
		_ = conn.Close()
		if request == activateRequest && onActivate != nil {
			onActivate()
		}
	}
}

// Release gives the port back. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the guarded localhost address.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

// GuardPort hashes appName onto [minGuardPort, maxGuardPort].
func GuardPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minGuardPort + int(hash.Sum32()%uint32(maxGuardPort-minGuardPort+1))
}

func guardAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", GuardPort(appName))
}
