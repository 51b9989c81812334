package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
	portsm "github.com/Cagdassrgl/internet-connection/internal/ports/mocks"
)

func TestWatchConnectivityUseCase_PublishesInitialCheckAndStreamedChanges(t *testing.T) {
	monitor := portsm.NewMockConnectivityMonitor(t)
	publisher := portsm.NewMockStatusPublisher(t)

	ch := make(chan connection.Status, 2)
	ch <- connection.StatusDisconnected
	ch <- connection.StatusConnected
	close(ch)

	monitor.On("Strategy").Return(ports.StrategyName)
	monitor.On("Check", mock.Anything).Return(connection.StatusConnected, nil)
	monitor.On("Watch", mock.Anything).Return((<-chan connection.Status)(ch), nil)

	publisher.On("Publish", mock.Anything, ports.StrategyName, connection.StatusConnected).Return(nil).Twice()
	publisher.On("Publish", mock.Anything, ports.StrategyName, connection.StatusDisconnected).Return(nil).Once()

	uc := newTestWatchUseCase(publisher, monitor)

	err := uc.Execute(testContext(t))
	require.NoError(t, err)
}

func TestWatchConnectivityUseCase_FailsWhenInitialCheckErrors(t *testing.T) {
	monitor := portsm.NewMockConnectivityMonitor(t)
	publisher := portsm.NewMockStatusPublisher(t)

	monitor.On("Strategy").Return(ports.StrategyConnect)
	monitor.On("Check", mock.Anything).Return(connection.StatusUnknown, errors.New("boom"))

	uc := newTestWatchUseCase(publisher, monitor)

	err := uc.Execute(testContext(t))
	require.ErrorContains(t, err, "initial connect check failed")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestWatchConnectivityUseCase_FailsWhenStreamCannotStart(t *testing.T) {
	monitor := portsm.NewMockConnectivityMonitor(t)
	publisher := portsm.NewMockStatusPublisher(t)

	monitor.On("Strategy").Return(ports.StrategyName)
	monitor.On("Check", mock.Anything).Return(connection.StatusConnected, nil)
	monitor.On("Watch", mock.Anything).Return(nil, connection.ErrEmptyHost)

	publisher.On("Publish", mock.Anything, ports.StrategyName, connection.StatusConnected).Return(nil)

	uc := newTestWatchUseCase(publisher, monitor)

	err := uc.Execute(testContext(t))
	require.ErrorContains(t, err, "failed to start name monitor")
	require.ErrorIs(t, err, connection.ErrEmptyHost)
}

func TestWatchConnectivityUseCase_PublishErrorIsNotFatal(t *testing.T) {
	monitor := portsm.NewMockConnectivityMonitor(t)
	publisher := portsm.NewMockStatusPublisher(t)

	ch := make(chan connection.Status)
	close(ch)

	monitor.On("Strategy").Return(ports.StrategyName)
	monitor.On("Check", mock.Anything).Return(connection.StatusDisconnected, nil)
	monitor.On("Watch", mock.Anything).Return((<-chan connection.Status)(ch), nil)

	publisher.On("Publish", mock.Anything, ports.StrategyName, connection.StatusDisconnected).Return(errors.New("publish failed"))

	uc := newTestWatchUseCase(publisher, monitor)

	err := uc.Execute(testContext(t))
	require.NoError(t, err)
}

func TestWatchConnectivityUseCase_RunsEveryStrategy(t *testing.T) {
	name := portsm.NewMockConnectivityMonitor(t)
	conn := portsm.NewMockConnectivityMonitor(t)
	publisher := portsm.NewMockStatusPublisher(t)

	closed := make(chan connection.Status)
	close(closed)

	name.On("Strategy").Return(ports.StrategyName)
	name.On("Check", mock.Anything).Return(connection.StatusConnected, nil)
	name.On("Watch", mock.Anything).Return((<-chan connection.Status)(closed), nil)

	conn.On("Strategy").Return(ports.StrategyConnect)
	conn.On("Check", mock.Anything).Return(connection.StatusDisconnected, nil)
	conn.On("Watch", mock.Anything).Return((<-chan connection.Status)(closed), nil)

	publisher.On("Publish", mock.Anything, ports.StrategyName, connection.StatusConnected).Return(nil)
	publisher.On("Publish", mock.Anything, ports.StrategyConnect, connection.StatusDisconnected).Return(nil)

	uc := newTestWatchUseCase(publisher, name, conn)

	err := uc.Execute(testContext(t))
	require.NoError(t, err)
}

func newTestWatchUseCase(publisher ports.StatusPublisher, monitors ...ports.ConnectivityMonitor) *WatchConnectivityUseCase {
	return NewWatchConnectivityUseCase(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		publisher,
		monitors...,
	)
}
