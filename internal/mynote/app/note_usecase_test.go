package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mynote/internal/mynote/app"
	"mynote/internal/mynote/domain/entities"
)

const testNoteID = "6f1c2b1e-3c2d-4b8e-9a55-1f0c6a7e2d10"

func TestNoteCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		stored := &entities.Note{ID: testNoteID, Title: "t", Author: testUsername, Tag: "x", Content: "hello"}
		noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Author == testUsername && n.Title == "t" && n.Tag == "x" && n.Content == "hello"
		})).Return(stored, nil).Once()

		note, err := app.NewNoteUseCase(noteRepo).Create(context.Background(), testUsername, "t", "x", "hello")

		require.NoError(t, err)
		assert.Equal(t, stored, note)
		noteRepo.AssertExpectations(t)
	})

	t.Run("empty field", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)

		note, err := app.NewNoteUseCase(noteRepo).Create(context.Background(), testUsername, "t", "  ", "hello")

		require.ErrorIs(t, err, entities.ErrEmptyNoteField)
		require.ErrorIs(t, err, entities.ErrValidation)
		assert.Nil(t, note)
		noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errDatabaseOperation).Once()

		note, err := app.NewNoteUseCase(noteRepo).Create(context.Background(), testUsername, "t", "x", "hello")

		require.ErrorIs(t, err, entities.ErrStore)
		require.ErrorIs(t, err, errDatabaseOperation)
		assert.Nil(t, note)
	})
}

func TestNoteListByAuthor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		notes := []*entities.Note{{ID: testNoteID, Author: testUsername}}
		noteRepo.On("ListByAuthor", mock.Anything, testUsername).Return(notes, nil).Once()

		got, err := app.NewNoteUseCase(noteRepo).ListByAuthor(context.Background(), testUsername)

		require.NoError(t, err)
		assert.Equal(t, notes, got)
	})

	t.Run("store failure", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("ListByAuthor", mock.Anything, testUsername).Return(nil, errDatabaseOperation).Once()

		got, err := app.NewNoteUseCase(noteRepo).ListByAuthor(context.Background(), testUsername)

		require.ErrorIs(t, err, entities.ErrStore)
		assert.Nil(t, got)
	})
}

func TestNoteGet(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(noteRepo *mockNoteRepository)
		wantErr error
	}{
		{
			name: "found",
			setup: func(noteRepo *mockNoteRepository) {
				noteRepo.On("FindByID", mock.Anything, testNoteID).
					Return(&entities.Note{ID: testNoteID, Author: "someone-else"}, nil).Once()
			},
		},
		{
			name: "not found",
			setup: func(noteRepo *mockNoteRepository) {
				noteRepo.On("FindByID", mock.Anything, testNoteID).Return(nil, nil).Once()
			},
			wantErr: entities.ErrNoteNotFound,
		},
		{
			name: "store failure",
			setup: func(noteRepo *mockNoteRepository) {
				noteRepo.On("FindByID", mock.Anything, testNoteID).Return(nil, errDatabaseOperation).Once()
			},
			wantErr: entities.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := new(mockNoteRepository)
			tt.setup(noteRepo)

			note, err := app.NewNoteUseCase(noteRepo).Get(context.Background(), testNoteID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testNoteID, note.ID)
			}
			noteRepo.AssertExpectations(t)
		})
	}
}
