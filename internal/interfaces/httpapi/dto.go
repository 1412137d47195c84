package httpapi

import (
	"time"

	"github.com/rinksidehq/rinkside/internal/domain/event"
	"github.com/rinksidehq/rinkside/internal/domain/game"
	"github.com/rinksidehq/rinkside/internal/domain/league"
	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/player"
	"github.com/rinksidehq/rinkside/internal/domain/season"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
	"github.com/rinksidehq/rinkside/internal/domain/stream"
	"github.com/rinksidehq/rinkside/internal/domain/team"
	"github.com/rinksidehq/rinkside/internal/usecase"
)

type leagueDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		Code:        l.Code,
		Name:        l.Name,
		Description: l.Description,
		IsDefault:   l.IsDefault,
	}
}

type seasonDTO struct {
	Code         string `json:"code"`
	LeagueCode   string `json:"leagueCode"`
	Year         int    `json:"year"`
	EndDate      string `json:"endDate,omitempty"`
	PlayoffTeams int    `json:"playoffTeams"`
}

func seasonToDTO(s season.Season) seasonDTO {
	endDate := ""
	if s.EndDate != nil {
		endDate = s.EndDate.Format(time.DateOnly)
	}
	return seasonDTO{
		Code:         s.Code,
		LeagueCode:   season.LeaguePrefix(s.Code),
		Year:         s.Year,
		EndDate:      endDate,
		PlayoffTeams: s.PlayoffTeams,
	}
}

// standingDTO carries the derived columns the portal renders: goalDiff is
// always recomputed and pointsPct is null for a team with no games played.
type standingDTO struct {
	SeasonCode   string   `json:"seasonCode"`
	TeamCode     string   `json:"teamCode"`
	Coach        string   `json:"coach"`
	GamesPlayed  int      `json:"gamesPlayed"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Ties         int      `json:"ties"`
	OTLosses     int      `json:"otLosses"`
	Points       int      `json:"points"`
	GoalsFor     int      `json:"goalsFor"`
	GoalsAgainst int      `json:"goalsAgainst"`
	GoalDiff     int      `json:"goalDiff"`
	PointsPct    *float64 `json:"pointsPct"`
	Rank         int      `json:"rank"`
	Division     string   `json:"division,omitempty"`
}

func standingToDTO(s standing.Standing) standingDTO {
	dto := standingDTO{
		SeasonCode:   s.SeasonCode,
		TeamCode:     s.TeamCode,
		Coach:        s.Coach,
		GamesPlayed:  s.GamesPlayed,
		Wins:         s.Wins,
		Losses:       s.Losses,
		Ties:         s.Ties,
		OTLosses:     s.OTLosses,
		Points:       s.Points,
		GoalsFor:     s.GoalsFor,
		GoalsAgainst: s.GoalsAgainst,
		GoalDiff:     s.GoalDifferential(),
		Rank:         s.Rank,
		Division:     s.Division,
	}
	if pct, ok := s.PointsPct(); ok {
		dto.PointsPct = &pct
	}
	return dto
}

func standingsToDTOs(rows []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingToDTO(row))
	}
	return out
}

type gameDTO struct {
	SeasonCode string `json:"seasonCode"`
	GameNumber int    `json:"gameNumber"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomeScore  *int   `json:"homeScore"`
	AwayScore  *int   `json:"awayScore"`
	HomeResult string `json:"homeResult,omitempty"`
	AwayResult string `json:"awayResult,omitempty"`
	Overtime   bool   `json:"overtime"`
	Mode       string `json:"mode"`
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		SeasonCode: g.SeasonCode,
		GameNumber: g.GameNumber,
		HomeTeam:   g.HomeTeam,
		AwayTeam:   g.AwayTeam,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		HomeResult: g.HomeResult,
		AwayResult: g.AwayResult,
		Overtime:   g.Overtime,
		Mode:       string(g.Mode),
	}
}

func gamesToDTOs(games []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, gameToDTO(g))
	}
	return out
}

type streakDTO struct {
	TeamCode string `json:"teamCode"`
	Length   int    `json:"length"`
}

type streakReportDTO struct {
	SeasonCode  string      `json:"seasonCode"`
	WinStreaks  []streakDTO `json:"winStreaks"`
	LossStreaks []streakDTO `json:"lossStreaks"`
}

func streakReportToDTO(report usecase.StreakReport) streakReportDTO {
	toDTOs := func(items []usecase.Streak) []streakDTO {
		out := make([]streakDTO, 0, len(items))
		for _, item := range items {
			out = append(out, streakDTO{TeamCode: item.TeamCode, Length: item.Length})
		}
		return out
	}
	return streakReportDTO{
		SeasonCode:  report.SeasonCode,
		WinStreaks:  toDTOs(report.WinStreaks),
		LossStreaks: toDTOs(report.LossStreaks),
	}
}

type bracketSideDTO struct {
	Seed     int    `json:"seed"`
	TeamCode string `json:"teamCode"`
	Coach    string `json:"coach"`
}

type matchupDTO struct {
	High bracketSideDTO `json:"high"`
	Low  bracketSideDTO `json:"low"`
}

type bracketDTO struct {
	SeasonCode string       `json:"seasonCode"`
	FieldSize  int          `json:"fieldSize"`
	Matchups   []matchupDTO `json:"matchups"`
}

func bracketToDTO(b usecase.Bracket) bracketDTO {
	matchups := make([]matchupDTO, 0, len(b.Matchups))
	for _, m := range b.Matchups {
		matchups = append(matchups, matchupDTO{
			High: bracketSideDTO{Seed: m.High.Seed, TeamCode: m.High.TeamCode, Coach: m.High.Coach},
			Low:  bracketSideDTO{Seed: m.Low.Seed, TeamCode: m.Low.TeamCode, Coach: m.Low.Coach},
		})
	}
	return bracketDTO{
		SeasonCode: b.SeasonCode,
		FieldSize:  b.FieldSize,
		Matchups:   matchups,
	}
}

type teamDTO struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Arena      string `json:"arena,omitempty"`
	LeagueCode string `json:"leagueCode,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		Code:       t.Code,
		Name:       t.Name,
		Arena:      t.Arena,
		LeagueCode: t.LeagueCode,
	}
}

type managerDTO struct {
	Name            string `json:"name"`
	DiscordID       string `json:"discordId,omitempty"`
	DiscordUsername string `json:"discordUsername,omitempty"`
	TwitchUsername  string `json:"twitchUsername,omitempty"`
	YouTubeURL      string `json:"youtubeUrl,omitempty"`
}

func managerToDTO(m manager.Manager) managerDTO {
	return managerDTO{
		Name:            m.Name,
		DiscordID:       m.DiscordID,
		DiscordUsername: m.DiscordUsername,
		TwitchUsername:  m.TwitchUsername,
		YouTubeURL:      m.YouTubeURL,
	}
}

type careerTotalsDTO struct {
	Seasons      int      `json:"seasons"`
	GamesPlayed  int      `json:"gamesPlayed"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Ties         int      `json:"ties"`
	OTLosses     int      `json:"otLosses"`
	Points       int      `json:"points"`
	GoalsFor     int      `json:"goalsFor"`
	GoalsAgainst int      `json:"goalsAgainst"`
	WinPct       *float64 `json:"winPct"`
}

type managerProfileDTO struct {
	Manager       managerDTO      `json:"manager"`
	Seasons       []standingDTO   `json:"seasons"`
	Career        careerTotalsDTO `json:"career"`
	Championships []string        `json:"championships"`
}

func managerProfileToDTO(profile usecase.ManagerProfile) managerProfileDTO {
	career := careerTotalsDTO{
		Seasons:      profile.Career.Seasons,
		GamesPlayed:  profile.Career.GamesPlayed,
		Wins:         profile.Career.Wins,
		Losses:       profile.Career.Losses,
		Ties:         profile.Career.Ties,
		OTLosses:     profile.Career.OTLosses,
		Points:       profile.Career.Points,
		GoalsFor:     profile.Career.GoalsFor,
		GoalsAgainst: profile.Career.GoalsAgainst,
	}
	if pct, ok := profile.Career.WinPct(); ok {
		career.WinPct = &pct
	}

	titles := make([]string, 0, len(profile.Championships))
	for _, title := range profile.Championships {
		titles = append(titles, title.Label)
	}

	return managerProfileDTO{
		Manager:       managerToDTO(profile.Manager),
		Seasons:       standingsToDTOs(profile.Seasons),
		Career:        career,
		Championships: titles,
	}
}

type teamHistoryDTO struct {
	Seasons       []standingDTO `json:"seasons"`
	Championships []string      `json:"championships"`
}

func teamHistoryToDTO(history usecase.TeamHistory) teamHistoryDTO {
	titles := make([]string, 0, len(history.Championships))
	for _, title := range history.Championships {
		titles = append(titles, title.Label)
	}

	return teamHistoryDTO{
		Seasons:       standingsToDTOs(history.Seasons),
		Championships: titles,
	}
}

type headToHeadDTO struct {
	ManagerA string    `json:"managerA"`
	ManagerB string    `json:"managerB"`
	WinsA    int       `json:"winsA"`
	WinsB    int       `json:"winsB"`
	Ties     int       `json:"ties"`
	Games    []gameDTO `json:"games"`
}

func headToHeadToDTO(h2h usecase.HeadToHead) headToHeadDTO {
	return headToHeadDTO{
		ManagerA: h2h.ManagerA,
		ManagerB: h2h.ManagerB,
		WinsA:    h2h.WinsA,
		WinsB:    h2h.WinsB,
		Ties:     h2h.Ties,
		Games:    gamesToDTOs(h2h.Games),
	}
}

type playerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ratingsDTO struct {
	Speed        int `json:"speed"`
	Agility      int `json:"agility"`
	Shooting     int `json:"shooting"`
	Accuracy     int `json:"accuracy"`
	Passing      int `json:"passing"`
	Puckhandling int `json:"puckhandling"`
	Checking     int `json:"checking"`
	Defense      int `json:"defense"`
	Faceoffs     int `json:"faceoffs"`
	Endurance    int `json:"endurance"`
	Discipline   int `json:"discipline"`
	Poise        int `json:"poise"`
	Strength     int `json:"strength"`
	Goaltending  int `json:"goaltending"`
}

type seasonAttributesDTO struct {
	PlayerID   int64      `json:"playerId"`
	Year       int        `json:"year"`
	TeamCode   string     `json:"teamCode,omitempty"`
	Position   string     `json:"position,omitempty"`
	Handedness string     `json:"handedness,omitempty"`
	Ratings    ratingsDTO `json:"ratings"`
	Overall    int        `json:"overall"`
	Stars      float64    `json:"stars"`
}

func attributesToDTO(a player.SeasonAttributes) seasonAttributesDTO {
	return seasonAttributesDTO{
		PlayerID:   a.PlayerID,
		Year:       a.Year,
		TeamCode:   a.TeamCode,
		Position:   a.Position,
		Handedness: a.Handedness,
		Ratings: ratingsDTO{
			Speed:        a.Ratings.Speed,
			Agility:      a.Ratings.Agility,
			Shooting:     a.Ratings.Shooting,
			Accuracy:     a.Ratings.Accuracy,
			Passing:      a.Ratings.Passing,
			Puckhandling: a.Ratings.Puckhandling,
			Checking:     a.Ratings.Checking,
			Defense:      a.Ratings.Defense,
			Faceoffs:     a.Ratings.Faceoffs,
			Endurance:    a.Ratings.Endurance,
			Discipline:   a.Ratings.Discipline,
			Poise:        a.Ratings.Poise,
			Strength:     a.Ratings.Strength,
			Goaltending:  a.Ratings.Goaltending,
		},
		Overall: a.Overall,
		Stars:   a.Stars,
	}
}

func attributesToDTOs(items []player.SeasonAttributes) []seasonAttributesDTO {
	out := make([]seasonAttributesDTO, 0, len(items))
	for _, item := range items {
		out = append(out, attributesToDTO(item))
	}
	return out
}

type playerCareerDTO struct {
	Player     playerDTO             `json:"player"`
	Attributes []seasonAttributesDTO `json:"attributes"`
}

func playerCareerToDTO(career usecase.PlayerCareer) playerCareerDTO {
	return playerCareerDTO{
		Player:     playerDTO{ID: career.Player.ID, Name: career.Player.Name},
		Attributes: attributesToDTOs(career.Attributes),
	}
}

type comparisonDTO struct {
	Left  playerCareerDTO `json:"left"`
	Right playerCareerDTO `json:"right"`
}

type rosterEntryDTO struct {
	Player     playerDTO             `json:"player"`
	Attributes seasonAttributesDTO   `json:"attributes"`
	Future     []seasonAttributesDTO `json:"future,omitempty"`
}

func rosterEntryToDTO(entry usecase.RosterEntry) rosterEntryDTO {
	return rosterEntryDTO{
		Player:     playerDTO{ID: entry.Player.ID, Name: entry.Player.Name},
		Attributes: attributesToDTO(entry.Attributes),
		Future:     attributesToDTOs(entry.Future),
	}
}

type streamMetadataDTO struct {
	Title        string `json:"title"`
	GameName     string `json:"gameName"`
	ViewerCount  int    `json:"viewerCount"`
	StartedAt    string `json:"startedAt"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type streamStatusDTO struct {
	Username  string             `json:"username"`
	CoachName string             `json:"coachName"`
	IsLive    bool               `json:"isLive"`
	Live      *streamMetadataDTO `json:"live"`
}

func streamStatusToDTO(status stream.Status) streamStatusDTO {
	dto := streamStatusDTO{
		Username:  status.Username,
		CoachName: status.CoachName,
		IsLive:    status.IsLive,
	}
	if status.Live != nil {
		dto.Live = &streamMetadataDTO{
			Title:        status.Live.Title,
			GameName:     status.Live.GameName,
			ViewerCount:  status.Live.ViewerCount,
			StartedAt:    status.Live.StartedAt,
			ThumbnailURL: status.Live.ThumbnailURL,
		}
	}
	return dto
}

type eventDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

func eventToDTO(e event.Event) eventDTO {
	return eventDTO{
		ID:        e.ID,
		Name:      e.Name,
		URL:       e.URL,
		StartTime: e.StartTime,
		Status:    e.Status,
	}
}
