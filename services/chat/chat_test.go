package chat

import (
	"sync"
	"testing"

	"pulselink/models"
	"pulselink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultChatService, *utils.ManualScheduler) {
	scheduler := &utils.ManualScheduler{}
	return NewDefaultChatService(scheduler), scheduler
}

func TestThreadsSeededOnFirstAccess(t *testing.T) {
	svc, _ := newTestService()

	threads := svc.Threads("user-1")
	require.NotEmpty(t, threads)
	for _, thread := range threads {
		assert.NotEmpty(t, thread.Messages)
	}
}

func TestCreateThreadPrepends(t *testing.T) {
	svc, _ := newTestService()

	before := len(svc.Threads("user-1"))
	thread := svc.CreateThread("user-1")

	threads := svc.Threads("user-1")
	require.Len(t, threads, before+1)
	assert.Equal(t, thread.ID, threads[0].ID)
	assert.Equal(t, "New conversation", threads[0].Title)
	assert.Empty(t, threads[0].Messages)
}

func TestAddMessageSchedulesAssistantReply(t *testing.T) {
	svc, scheduler := newTestService()
	thread := svc.CreateThread("user-1")

	message, err := svc.AddMessage("user-1", thread.ID, "I have a sore throat.", nil)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, message.Role)

	// Reply is delayed: nothing lands until the timer fires.
	threads := svc.Threads("user-1")
	require.Len(t, threads[0].Messages, 1)
	require.Equal(t, 1, scheduler.Pending())

	scheduler.Fire()
	threads = svc.Threads("user-1")
	require.Len(t, threads[0].Messages, 2)
	assert.Equal(t, models.RoleAssistant, threads[0].Messages[1].Role)
	assert.Equal(t, AssistantReply, threads[0].Messages[1].Content)
}

func TestThreadsSnapshotSafeDuringReply(t *testing.T) {
	svc, scheduler := newTestService()
	thread := svc.CreateThread("user-1")

	_, err := svc.AddMessage("user-1", thread.ID, "hello", nil)
	require.NoError(t, err)
	snapshot := svc.Threads("user-1")

	_, err = svc.AddGuestMessage("guest-1", "hello")
	require.NoError(t, err)
	guestSnapshot := svc.GuestMessages("guest-1")

	// The reply timer fires on its own goroutine in production; reading
	// a previously returned snapshot while it lands must be safe.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scheduler.Fire()
	}()
	go func() {
		defer wg.Done()
		for _, th := range snapshot {
			for _, m := range th.Messages {
				_ = m.Content
			}
		}
		for _, m := range guestSnapshot {
			_ = m.Content
		}
	}()
	wg.Wait()

	// Replies landed in the service, not in the earlier snapshots.
	threads := svc.Threads("user-1")
	require.Len(t, threads[0].Messages, 2)
	assert.Len(t, snapshot[0].Messages, 1)
	require.Len(t, svc.GuestMessages("guest-1"), 2)
	assert.Len(t, guestSnapshot, 1)
}

func TestAddMessageUnknownThread(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.AddMessage("user-1", "missing", "hello", nil)
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestGuestFlow(t *testing.T) {
	svc, scheduler := newTestService()

	message, err := svc.AddGuestMessage("guest-1", "Can I book without an account?")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, message.Role)

	scheduler.Fire()
	messages := svc.GuestMessages("guest-1")
	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleAssistant, messages[1].Role)
	assert.Equal(t, GuestAssistantReply, messages[1].Content)

	svc.ClearGuestMessages("guest-1")
	assert.Empty(t, svc.GuestMessages("guest-1"))
}
