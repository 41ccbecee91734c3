package ifcontrol

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewController_Options(t *testing.T) {
	_, err := NewController(WithHandle(nil))
	assert.Error(t, err)

	_, err = NewController(WithLogger(nil))
	assert.Error(t, err)

	_, err = NewController(WithNamespacePath(""))
	assert.Error(t, err)

	_, err = NewController(WithHandle(testFd), WithNamespacePath("/var/run/netns/blue"))
	assert.Error(t, err)
}

func TestController_BorrowedHandleIsNotClosed(t *testing.T) {
	c, err := NewController(WithHandle(testFd))
	require.NoError(t, err)

	assert.Equal(t, Handle(testFd), c.Handle())
	assert.Nil(t, c.owned)
	assert.NoError(t, c.Close())
}

func TestController_UpDown(t *testing.T) {
	others := FlagBroadcast | FlagMulticast
	k := newFakeKernel(map[string]Flags{"eth0": others})
	withKernel(t, k)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := NewController(WithHandle(testFd), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, c.Up("eth0"))
	require.NoError(t, c.Up("eth0"))

	ok, err := c.IsUp("eth0")
	require.NoError(t, err)
	assert.True(t, ok)

	flags, err := c.Flags("eth0")
	require.NoError(t, err)
	assert.Equal(t, others|FlagUp|FlagRunning, flags)

	require.NoError(t, c.Down("eth0"))
	assert.Equal(t, 2, k.writes)

	msgs := make([]string, 0, len(hook.AllEntries()))
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
		assert.Equal(t, "eth0", e.Data["iface"])
	}
	assert.Equal(t, []string{
		"interface state changed",
		"interface already in requested state",
		"interface state changed",
	}, msgs)
}

func TestController_Ifreq(t *testing.T) {
	k := new(mockKernel)
	withKernel(t, k)

	k.On("getFlags", uintptr(7), "wg0").Return(FlagUp|FlagPointToPoint, nil).Once()

	c, err := NewController(WithHandle(testFd))
	require.NoError(t, err)

	ifr, err := c.Ifreq("wg0")
	require.NoError(t, err)
	assert.Equal(t, "wg0", ifr.Name())
	assert.Equal(t, FlagUp|FlagPointToPoint, ifr.Flags())
	k.AssertExpectations(t)
}

func TestController_FailureIsLogged(t *testing.T) {
	k := new(mockKernel)
	withKernel(t, k)

	k.On("getFlags", uintptr(7), "eth0").Return(nil, ErrInterfaceNotFound).Once()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := NewController(WithHandle(testFd), WithLogger(logger))
	require.NoError(t, err)

	err = c.Up("eth0")
	assert.Equal(t, KindInterfaceNotFound, KindOf(err))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, ErrInterfaceNotFound, hook.LastEntry().Data[logrus.ErrorKey])
	k.AssertNotCalled(t, "setFlags", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_SerializedAccess(t *testing.T) {
	k := newFakeKernel(map[string]Flags{"eth0": FlagBroadcast, "eth1": FlagBroadcast})
	withKernel(t, k)

	c, err := NewController(WithHandle(testFd), WithSerializedAccess())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			name := "eth0"
			if i%4 == 0 {
				name = "eth1"
			}

			status := StatusUp
			if i%2 == 1 {
				status = StatusDown
			}

			assert.NoError(t, c.SetStatus(name, status))
		}(i)
	}
	wg.Wait()

	assert.Zero(t, k.conflicts)
	assert.NotZero(t, k.writes)

	for _, name := range []string{"eth0", "eth1"} {
		assert.Equal(t, FlagBroadcast, k.flags[name]&^(FlagUp|FlagRunning))
	}
}
