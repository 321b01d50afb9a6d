package analyze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/moodlog-app/moodlog/pkg/analysis"
	"github.com/moodlog-app/moodlog/pkg/entry"
	"github.com/moodlog-app/moodlog/pkg/printers"
	"github.com/moodlog-app/moodlog/pkg/store"
	"github.com/moodlog-app/moodlog/pkg/view"
	"github.com/moodlog-app/moodlog/pkg/youtube"
)

// Analyzer is the external summarization collaborator.
type Analyzer interface {
	Analyze(ctx context.Context, entries []*entry.Entry) (*analysis.Result, error)
}

// MusicSearcher is the external video-recommendation collaborator.
type MusicSearcher interface {
	SearchMusic(ctx context.Context, keyword string) ([]youtube.Video, error)
}

// Analyze sends the trailing window of entries to the analysis collaborator
// and optionally follows up with a music search. The music call is only
// issued after a successful analysis that produced keywords.
type Analyze struct {
	Days  int
	Music bool

	Journal  store.Store
	Analyzer Analyzer
	Searcher MusicSearcher
}

func (n *Analyze) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not analyze, no journal")
	}
	if n.Analyzer == nil {
		return errors.New("can not analyze, no analysis client")
	}
	days := n.Days
	if days <= 0 {
		days = 7
	}

	all, err := n.Journal.ListAll(ctx)
	if err != nil {
		return err
	}
	// No entries ever and no entries in the window read differently to the
	// user; keep the two messages distinct.
	f := color.New(color.Faint)
	if len(all) == 0 {
		_, _ = f.Println("아직 감정 기록이 없습니다. moodlog add 로 오늘의 감정을 기록해보세요.")
		return nil
	}
	recent := view.RecentWindow(all, days, time.Now())
	if len(recent) == 0 {
		_, _ = f.Printf("최근 %d일간의 감정 기록이 없습니다. moodlog add 로 오늘의 감정을 기록해보세요.\n", days)
		return nil
	}

	result, err := n.Analyzer.Analyze(ctx, recent)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Analysis(result)

	if !n.Music {
		return nil
	}
	if n.Searcher == nil {
		return errors.New("can not search music, no video client")
	}
	keyword := youtube.PickKeyword(result.MusicKeywords)
	if keyword == "" {
		_, _ = f.Println("분석 결과에 음악 키워드가 없습니다.")
		return nil
	}
	videos, err := n.Searcher.SearchMusic(ctx, keyword)
	if err != nil {
		return fmt.Errorf("music search for %q: %w", keyword, err)
	}
	pp.Videos(videos)

	return nil
}
