package commands

import (
	"errors"
	"testing"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
)

func linear() []domain.Question {
	return []domain.Question{
		{ID: "q1", Text: "First"},
		{ID: "q2", Text: "Second"},
		{ID: "q3", Text: "Third"},
	}
}

func TestStartInterviewCommand_EmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewStartInterviewCommand(repo).Execute(ctx)
	if !errors.Is(err, application.ErrEmptyStore) {
		t.Errorf("expected ErrEmptyStore, got %v", err)
	}
}

func TestInterview_LinearWalkEndsAfterLastQuestion(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)

	start, err := NewStartInterviewCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if start.Question == nil || start.Question.ID != "q1" || start.Position != 1 || start.Total != 3 {
		t.Fatalf("start state = %+v", start.InterviewState)
	}

	for _, want := range []string{"q2", "q3"} {
		res, err := NewAdvanceCommand(repo, "", ptr("answer for "+want)).Execute(ctx)
		if err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if res.Question == nil || res.Question.ID != want {
			t.Fatalf("expected %s, got %+v", want, res.InterviewState)
		}
	}

	final, err := NewAdvanceCommand(repo, "", ptr("last")).Execute(ctx)
	if err != nil {
		t.Fatalf("final advance failed: %v", err)
	}
	if final.Step.Kind != domain.StepEnd || final.Status != domain.StatusEnded {
		t.Errorf("final = %+v step %+v", final.InterviewState, final.Step)
	}
	if len(final.Transcript) != 3 {
		t.Errorf("transcript = %+v", final.Transcript)
	}

	session, _ := repo.LoadSession()
	if session.Status != domain.StatusEnded {
		t.Errorf("persisted status = %v", session.Status)
	}
}

func TestInterview_BranchYesNo(t *testing.T) {
	questions := []domain.Question{
		{ID: "q1", Text: "Do you cycle?", BranchingRules: domain.BranchRules{
			{Answer: "yes", Target: domain.ContinueTo("q2")},
			{Answer: "no", Target: domain.EndInterview()},
		}},
		{ID: "q2", Text: "How often?"},
	}

	t.Run("yes continues", func(t *testing.T) {
		repo := newTestRepo(t)
		seedQuestions(t, repo, questions...)
		_, _ = NewStartInterviewCommand(repo).Execute(ctx)

		res, err := NewAdvanceCommand(repo, "yes", nil).Execute(ctx)
		if err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if res.Question == nil || res.Question.ID != "q2" {
			t.Errorf("state = %+v", res.InterviewState)
		}
	})

	t.Run("no ends", func(t *testing.T) {
		repo := newTestRepo(t)
		seedQuestions(t, repo, questions...)
		_, _ = NewStartInterviewCommand(repo).Execute(ctx)

		res, err := NewAdvanceCommand(repo, "no", ptr("never")).Execute(ctx)
		if err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if res.Status != domain.StatusEnded || len(res.Transcript) != 1 {
			t.Errorf("state = %+v", res.InterviewState)
		}
	})

	t.Run("unknown answer", func(t *testing.T) {
		repo := newTestRepo(t)
		seedQuestions(t, repo, questions...)
		_, _ = NewStartInterviewCommand(repo).Execute(ctx)

		_, err := NewAdvanceCommand(repo, "sometimes", ptr("x")).Execute(ctx)
		if !errors.Is(err, application.ErrUnknownAnswer) {
			t.Fatalf("expected ErrUnknownAnswer, got %v", err)
		}
		session, _ := repo.LoadSession()
		if session.CurrentQuestionID != "q1" || len(session.Entries) != 0 {
			t.Errorf("session changed: %+v", session)
		}
	})
}

func TestInterview_NothingAnsweredIsSoft(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, domain.Question{ID: "q1", Text: "Only"})
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)

	res, err := NewAdvanceCommand(repo, "", nil).Execute(ctx)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if res.Status != domain.StatusIdle || res.Message != NothingAnsweredMessage {
		t.Errorf("result = %+v", res)
	}

	session, _ := repo.LoadSession()
	if session.Status != domain.StatusIdle {
		t.Errorf("persisted status = %v", session.Status)
	}
}

func TestRecordNoteCommand_PersistsEverySave(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)

	_, _ = NewRecordNoteCommand(repo, "one").Execute(ctx)
	res, err := NewRecordNoteCommand(repo, "two").Execute(ctx)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if res.Note != "two" {
		t.Errorf("note = %q", res.Note)
	}

	session, _ := repo.LoadSession()
	if len(session.Entries) != 1 || session.Entries[0].Notes != "two" {
		t.Errorf("entries = %+v", session.Entries)
	}
}

func TestRecordNoteCommand_NoSession(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewRecordNoteCommand(repo, "x").Execute(ctx)
	if !errors.Is(err, application.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestCurrentQuestionCommand_DeletedQuestionEndsInterview(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)
	_, _ = NewAdvanceCommand(repo, "", ptr("kept")).Execute(ctx)

	if _, err := NewDeleteQuestionCommand(repo, "q2").Execute(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	res, err := NewCurrentQuestionCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if res.Status != domain.StatusEnded || res.Question != nil {
		t.Errorf("state = %+v", res.InterviewState)
	}
	if len(res.Transcript) != 1 || res.Transcript[0].QuestionID != "q1" {
		t.Errorf("transcript = %+v", res.Transcript)
	}
}

func TestRecordNoteCommand_DeletedQuestionEndsInterview(t *testing.T) {
	tests := []struct {
		name       string
		answered   bool
		wantStatus domain.Status
		wantLen    int
	}{
		{name: "earlier answers exported", answered: true, wantStatus: domain.StatusEnded, wantLen: 1},
		{name: "nothing answered", answered: false, wantStatus: domain.StatusIdle, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			seedQuestions(t, repo, linear()...)
			_, _ = NewStartInterviewCommand(repo).Execute(ctx)
			current := "q1"
			if tt.answered {
				_, _ = NewAdvanceCommand(repo, "", ptr("kept")).Execute(ctx)
				current = "q2"
			}
			if _, err := NewDeleteQuestionCommand(repo, current).Execute(ctx); err != nil {
				t.Fatalf("delete failed: %v", err)
			}

			res, err := NewRecordNoteCommand(repo, "orphan note").Execute(ctx)
			if err != nil {
				t.Fatalf("record note failed: %v", err)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", res.Status, tt.wantStatus)
			}
			if len(res.Transcript) != tt.wantLen {
				t.Fatalf("transcript = %+v", res.Transcript)
			}
			for _, e := range res.Transcript {
				if e.QuestionText == "" || e.Notes == "orphan note" {
					t.Errorf("orphan entry exported: %+v", e)
				}
			}
			if !tt.answered && res.Message != NothingAnsweredMessage {
				t.Errorf("message = %q", res.Message)
			}

			session, _ := repo.LoadSession()
			if _, ok := session.Entry(current); ok {
				t.Errorf("note recorded for deleted question %s", current)
			}
		})
	}
}

func TestEndInterviewCommand_DeletedQuestionDropsNote(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)
	_, _ = NewAdvanceCommand(repo, "", ptr("kept")).Execute(ctx)
	if _, err := NewDeleteQuestionCommand(repo, "q2").Execute(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	res, err := NewEndInterviewCommand(repo, ptr("orphan note")).Execute(ctx)
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if len(res.Transcript) != 1 || res.Transcript[0].QuestionID != "q1" {
		t.Errorf("transcript = %+v", res.Transcript)
	}
	if text := domain.RenderTranscript(res.Transcript); contains(text, "orphan") {
		t.Errorf("transcript text = %q", text)
	}
}

func TestCurrentQuestionCommand_ResumesSession(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)
	_, _ = NewAdvanceCommand(repo, "", ptr("a")).Execute(ctx)
	_, _ = NewRecordNoteCommand(repo, "draft").Execute(ctx)

	res, err := NewCurrentQuestionCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if res.Question == nil || res.Question.ID != "q2" || res.Note != "draft" {
		t.Errorf("state = %+v", res.InterviewState)
	}
}

func TestAdvanceCommand_DanglingRuleEndsInterview(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, domain.Question{ID: "q1", Text: "Start", BranchingRules: domain.BranchRules{
		{Answer: "go", Target: domain.ContinueTo("gone")},
	}})
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)

	res, err := NewAdvanceCommand(repo, "go", ptr("went")).Execute(ctx)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if res.Status != domain.StatusEnded || len(res.Transcript) != 1 {
		t.Errorf("state = %+v", res.InterviewState)
	}
}

func TestEndInterviewCommand(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)
	_, _ = NewAdvanceCommand(repo, "", ptr("first")).Execute(ctx)

	res, err := NewEndInterviewCommand(repo, ptr("second")).Execute(ctx)
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if len(res.Transcript) != 2 || res.Transcript[1].Notes != "second" {
		t.Errorf("transcript = %+v", res.Transcript)
	}

	if _, err := NewEndInterviewCommand(repo, nil).Execute(ctx); !errors.Is(err, application.ErrNoActiveSession) {
		t.Errorf("second end error = %v", err)
	}
}

func TestStartInterviewCommand_RestartClearsEntries(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, linear()...)
	_, _ = NewStartInterviewCommand(repo).Execute(ctx)
	_, _ = NewAdvanceCommand(repo, "", ptr("a")).Execute(ctx)

	res, err := NewStartInterviewCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if res.Question.ID != "q1" || !contains(res.Message, "restarted") {
		t.Errorf("result = %+v", res)
	}
	session, _ := repo.LoadSession()
	if len(session.Entries) != 0 {
		t.Errorf("entries = %+v", session.Entries)
	}
}

func TestTranscriptCommand(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, domain.Question{ID: "q1", Text: "Where from?"})

	if _, err := NewTranscriptCommand(repo).Execute(ctx); !errors.Is(err, application.ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}

	_, _ = NewStartInterviewCommand(repo).Execute(ctx)
	_, _ = NewAdvanceCommand(repo, "", ptr("Braga")).Execute(ctx)

	res, err := NewTranscriptCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("transcript failed: %v", err)
	}
	if res.Text != "1. Where from?\n→ Braga\n\n" {
		t.Errorf("text = %q", res.Text)
	}
}
