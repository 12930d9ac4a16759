package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/joaovmb/trilha/internal/catalog"
)

type mockStore struct {
	progressCalls []mockProgressCall
	quizCalls     []mockQuizCall
	badgeCalls    []BadgeGrant
	affinityCalls []mockAffinityCall
	activityCalls []ActivityRecord

	progressErr error
	quizErr     error
	badgeErr    error
	affinityErr error
	activityErr error
}

type mockProgressCall struct {
	contentID string
	update    Update
}

type mockQuizCall struct {
	subject        catalog.Subject
	score          int
	totalQuestions int
	timeSpentSecs  int
}

type mockAffinityCall struct {
	mentorID string
	delta    int
}

func (m *mockStore) UpdateProgress(_ context.Context, contentID string, u Update) error {
	m.progressCalls = append(m.progressCalls, mockProgressCall{contentID, u})
	return m.progressErr
}

func (m *mockStore) SaveQuizScore(_ context.Context, subject catalog.Subject, score, totalQuestions, timeSpentSecs int) error {
	m.quizCalls = append(m.quizCalls, mockQuizCall{subject, score, totalQuestions, timeSpentSecs})
	return m.quizErr
}

func (m *mockStore) AwardBadge(_ context.Context, grant BadgeGrant) error {
	m.badgeCalls = append(m.badgeCalls, grant)
	return m.badgeErr
}

func (m *mockStore) UpdateAffinity(_ context.Context, mentorID string, delta int) error {
	m.affinityCalls = append(m.affinityCalls, mockAffinityCall{mentorID, delta})
	return m.affinityErr
}

func (m *mockStore) RecordActivityResult(_ context.Context, _ string, _ catalog.Subject, rec ActivityRecord) error {
	m.activityCalls = append(m.activityCalls, rec)
	return m.activityErr
}

func TestReadingDoneReportsPercentAndCompletion(t *testing.T) {
	tests := []struct {
		name          string
		completed     int
		total         int
		wantPct       int
		wantCompleted bool
	}{
		{"first of four", 1, 4, 25, false},
		{"half", 2, 4, 50, false},
		{"all", 4, 4, 100, true},
		{"one of three rounds", 1, 3, 33, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := &mockStore{}
			r := NewReporter(ms, nil)
			if err := r.ReadingDone(context.Background(), "mat-funcoes-1grau", tc.completed, tc.total); err != nil {
				t.Fatalf("ReadingDone: %v", err)
			}
			if len(ms.progressCalls) != 1 {
				t.Fatalf("progress calls = %d, want 1", len(ms.progressCalls))
			}
			call := ms.progressCalls[0]
			if call.contentID != "mat-funcoes-1grau" {
				t.Errorf("contentID = %q", call.contentID)
			}
			if call.update.ProgressPercentage == nil || *call.update.ProgressPercentage != tc.wantPct {
				t.Errorf("percentage = %v, want %d", call.update.ProgressPercentage, tc.wantPct)
			}
			if call.update.Completed == nil || *call.update.Completed != tc.wantCompleted {
				t.Errorf("completed = %v, want %v", call.update.Completed, tc.wantCompleted)
			}
			if call.update.TimeSpentSecs != nil {
				t.Errorf("time field should be unset on reading report")
			}
		})
	}
}

func TestQuizDoneForwardsScore(t *testing.T) {
	ms := &mockStore{}
	r := NewReporter(ms, nil)
	if err := r.QuizDone(context.Background(), catalog.SubjectMath, 40, 5, 87); err != nil {
		t.Fatalf("QuizDone: %v", err)
	}
	if len(ms.quizCalls) != 1 {
		t.Fatalf("quiz calls = %d, want 1", len(ms.quizCalls))
	}
	got := ms.quizCalls[0]
	if got.subject != catalog.SubjectMath || got.score != 40 || got.totalQuestions != 5 || got.timeSpentSecs != 87 {
		t.Errorf("quiz call = %+v", got)
	}
}

func TestChallengeDoneGrantsBadgeAndAffinity(t *testing.T) {
	ms := &mockStore{}
	r := NewReporter(ms, nil)
	grant := BadgeGrant{
		BadgeID:       "badge-funcoes-1grau",
		Name:          "Mestre das Funções",
		Subject:       catalog.SubjectMath,
		ContentID:     "mat-funcoes-1grau",
		PointsAwarded: 50,
	}
	if err := r.ChallengeDone(context.Background(), grant, "mentor-poti"); err != nil {
		t.Fatalf("ChallengeDone: %v", err)
	}
	if len(ms.badgeCalls) != 1 || ms.badgeCalls[0].BadgeID != "badge-funcoes-1grau" {
		t.Fatalf("badge calls = %+v", ms.badgeCalls)
	}
	if len(ms.affinityCalls) != 1 {
		t.Fatalf("affinity calls = %d, want 1", len(ms.affinityCalls))
	}
	if ms.affinityCalls[0].mentorID != "mentor-poti" || ms.affinityCalls[0].delta != AffinityChallengeBonus {
		t.Errorf("affinity call = %+v", ms.affinityCalls[0])
	}
}

func TestChallengeDoneSkipsAffinityWithoutMentor(t *testing.T) {
	ms := &mockStore{}
	r := NewReporter(ms, nil)
	if err := r.ChallengeDone(context.Background(), BadgeGrant{BadgeID: "b"}, ""); err != nil {
		t.Fatalf("ChallengeDone: %v", err)
	}
	if len(ms.affinityCalls) != 0 {
		t.Errorf("affinity calls = %d, want 0", len(ms.affinityCalls))
	}
}

func TestChallengeDoneBadgeFailureStillCreditsAffinity(t *testing.T) {
	ms := &mockStore{badgeErr: errors.New("disk full")}
	r := NewReporter(ms, nil)
	err := r.ChallengeDone(context.Background(), BadgeGrant{BadgeID: "b"}, "mentor-poti")
	if err == nil {
		t.Fatal("want error from failed badge grant")
	}
	if len(ms.affinityCalls) != 1 {
		t.Errorf("affinity calls = %d, want 1 despite badge failure", len(ms.affinityCalls))
	}
	if len(r.Failures()) != 1 || r.Failures()[0].Op != "award-badge" {
		t.Errorf("failures = %+v", r.Failures())
	}
}

func TestSessionDoneReportsTimeOnly(t *testing.T) {
	ms := &mockStore{}
	r := NewReporter(ms, nil)
	if err := r.SessionDone(context.Background(), "nat-ciclo-agua", 312); err != nil {
		t.Fatalf("SessionDone: %v", err)
	}
	call := ms.progressCalls[0]
	if call.update.TimeSpentSecs == nil || *call.update.TimeSpentSecs != 312 {
		t.Errorf("time = %v, want 312", call.update.TimeSpentSecs)
	}
	if call.update.Completed != nil || call.update.ProgressPercentage != nil {
		t.Errorf("completion fields should be unset on session report")
	}
}

func TestWriteFailuresAreRetained(t *testing.T) {
	ms := &mockStore{progressErr: errors.New("locked")}
	r := NewReporter(ms, nil)
	if err := r.ReadingDone(context.Background(), "id", 1, 2); err == nil {
		t.Fatal("want error")
	}
	if err := r.SessionDone(context.Background(), "id", 10); err == nil {
		t.Fatal("want error")
	}
	fails := r.Failures()
	if len(fails) != 2 {
		t.Fatalf("failures = %d, want 2", len(fails))
	}
	for _, f := range fails {
		if f.Op != "update-progress" || f.Err == nil || f.At.IsZero() {
			t.Errorf("failure = %+v", f)
		}
	}
}

func TestActivityDoneIsBestEffort(t *testing.T) {
	ms := &mockStore{activityErr: errors.New("sink gone")}
	r := NewReporter(ms, nil)
	r.ActivityDone(context.Background(), "id", catalog.SubjectLanguages, ActivityRecord{ActivityType: "flashcards", Score: 30})
	if len(ms.activityCalls) != 1 {
		t.Fatalf("activity calls = %d, want 1", len(ms.activityCalls))
	}
	if len(r.Failures()) != 0 {
		t.Errorf("analytics failure must not be retained, got %+v", r.Failures())
	}
}
