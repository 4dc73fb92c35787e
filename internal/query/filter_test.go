package query

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildFilter(t *testing.T) {
	spider := bson.Regex{Pattern: "spider", Options: "i"}

	tests := []struct {
		name   string
		search Search
		fields []string
		want   bson.M
	}{
		{
			name:   "real name searches alias too",
			search: Search{Query: "spider", Field: RealNameField},
			fields: CharacterFields,
			want: bson.M{"$or": bson.A{
				bson.M{RealNameField: spider},
				bson.M{AliasField: spider},
			}},
		},
		{
			name:   "single field",
			search: Search{Query: "spider", Field: "wiki.powers"},
			fields: CharacterFields,
			want:   bson.M{"wiki.powers": spider},
		},
		{
			name:   "equality filters are ANDed",
			search: Search{Query: "spider", Field: "name", Equals: map[string]string{GenderField: "female", UniverseField: "Earth-616"}},
			fields: CharacterFields,
			want:   bson.M{"name": spider, GenderField: "female", UniverseField: "Earth-616"},
		},
		{
			name:   "empty equality values are skipped",
			search: Search{Query: "spider", Field: "name", Equals: map[string]string{GenderField: "", UniverseField: ""}},
			fields: CharacterFields,
			want:   bson.M{"name": spider},
		},
		{
			name:   "empty query matches everything",
			search: Search{Equals: map[string]string{GenderField: "male"}},
			fields: CharacterFields,
			want:   bson.M{GenderField: "male"},
		},
		{
			name:   "regex metacharacters are escaped",
			search: Search{Query: "(.*)+", Field: "title"},
			fields: ComicFields,
			want:   bson.M{"title": bson.Regex{Pattern: `\(\.\*\)\+`, Options: "i"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildFilter(tt.search, tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFilter_Unscoped(t *testing.T) {
	got, err := BuildFilter(Search{Query: "hulk"}, CharacterFields)
	require.NoError(t, err)

	or, ok := got["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, len(CharacterFields))
	for i, f := range CharacterFields {
		assert.Equal(t, bson.M{f: bson.Regex{Pattern: "hulk", Options: "i"}}, or[i])
	}
}

func TestBuildFilter_UnknownField(t *testing.T) {
	_, err := BuildFilter(Search{Query: "x", Field: "$where"}, CharacterFields)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = BuildFilter(Search{Query: "x", Field: "wiki.powers"}, ComicFields)
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = BuildFilter(Search{Query: "x", Field: RealNameField}, ComicFields)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestBuildFilter_EscapedPatternMatchesLiterally(t *testing.T) {
	got, err := BuildFilter(Search{Query: "Spider-Man (2099)", Field: "name"}, CharacterFields)
	require.NoError(t, err)

	re := regexp.MustCompile("(?i)" + got["name"].(bson.Regex).Pattern)
	assert.True(t, re.MatchString("The amazing SPIDER-MAN (2099) returns"))
	assert.False(t, re.MatchString("Spider-Man 2099"))
}
