package probe

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
)

func TestConnectMonitor_ChecksLocalListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	port := l.Addr().(*net.TCPAddr).Port
	m := NewConnectMonitor(connection.NewChecker(), "127.0.0.1", port, time.Second, time.Second)

	require.Equal(t, ports.StrategyConnect, m.Strategy())

	status, err := m.Check(testContext(t))
	require.NoError(t, err)
	require.Equal(t, connection.StatusConnected, status)
}

func TestConnectMonitor_WatchRejectsBadPort(t *testing.T) {
	m := NewConnectMonitor(connection.NewChecker(), "127.0.0.1", 0, time.Second, time.Second)

	ch, err := m.Watch(testContext(t))
	require.ErrorIs(t, err, connection.ErrInvalidPort)
	require.Nil(t, ch)
}

func TestNameMonitor_WatchRejectsEmptyHost(t *testing.T) {
	m := NewNameMonitor(connection.NewChecker(), "", time.Second, time.Second)

	require.Equal(t, ports.StrategyName, m.Strategy())

	ch, err := m.Watch(testContext(t))
	require.ErrorIs(t, err, connection.ErrEmptyHost)
	require.Nil(t, ch)
}
