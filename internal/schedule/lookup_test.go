package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/pfrederiksen/bin-days/internal/config"
)

type stubFetcher struct {
	doc Document
	err error
	url string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (Document, error) {
	s.url = url
	return s.doc, s.err
}

func testVariant() config.Variant {
	return config.Variant{
		Slug:    "black",
		URL:     "https://council.example/black",
		Title:   "Black",
		Targets: []string{"Upper Shader", "Lower Shader"},
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		fetcher   *stubFetcher
		wantKind  Kind
		wantAreas []string
	}{
		{
			name:     "fetch error",
			fetcher:  &stubFetcher{err: errors.New("fetch failed: status 503")},
			wantKind: KindFetchError,
		},
		{
			name: "no headers anywhere",
			fetcher: &stubFetcher{doc: fakeDoc{
				{rows: [][]string{{"Upper Shader", "1"}}},
			}},
			wantKind: KindNoDataFound,
		},
		{
			name: "targets without cells",
			fetcher: &stubFetcher{doc: fakeDoc{{
				headers: []string{"Area", "January"},
				rows:    [][]string{{"Upper Shader"}},
			}}},
			wantKind: KindPartialNoData,
		},
		{
			name: "one of two targets",
			fetcher: &stubFetcher{doc: fakeDoc{{
				headers: []string{"Area", "January", "February"},
				rows:    [][]string{{"Upper Shader", "3,17,31", "14,28"}},
			}}},
			wantKind:  KindSuccess,
			wantAreas: []string{"Upper Shader"},
		},
		{
			name: "configured order kept",
			fetcher: &stubFetcher{doc: fakeDoc{{
				headers: []string{"Area", "January"},
				rows: [][]string{
					{"Lower Shader", "10"},
					{"Upper Shader", "3"},
				},
			}}},
			wantKind:  KindSuccess,
			wantAreas: []string{"Upper Shader", "Lower Shader"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVariant()
			res := Lookup(context.Background(), tt.fetcher, v)

			if tt.fetcher.url != v.URL {
				t.Errorf("fetched %q, want %q", tt.fetcher.url, v.URL)
			}
			if res.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", res.Kind, tt.wantKind)
			}
			if tt.wantKind == KindFetchError && res.Err == nil {
				t.Error("Err should be set for fetch errors")
			}
			if len(res.Areas) != len(tt.wantAreas) {
				t.Fatalf("Areas = %+v, want %q", res.Areas, tt.wantAreas)
			}
			for i, label := range tt.wantAreas {
				if res.Areas[i].Label != label {
					t.Errorf("Areas[%d] = %q, want %q", i, res.Areas[i].Label, label)
				}
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindSuccess:       "success",
		KindFetchError:    "fetch_error",
		KindNoDataFound:   "no_data_found",
		KindPartialNoData: "partial_no_data",
		Kind(42):          "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
