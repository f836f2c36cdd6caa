package main

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"github.com/maplefeline/nledger/ledger"
)

type moveRequest struct {
	Color *ledger.Color
	From  *ledger.Square
	To    *ledger.Square
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type moveResponse struct {
	Href     string
	Game     Game
	Captured ledger.PieceType
}

type sideSquare struct {
	Color      ledger.Color
	Occupied   bool
	Piece      ledger.PieceType
	KingAround bool
}

type squareResponse struct {
	Href   string
	Square string
	Sides  []sideSquare
}

type statsResponse struct {
	Href  string
	Sides []sideStats
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, ledger.ErrPieceNotFound) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestSquare(c echo.Context) (ledger.Square, error) {
	param := c.Param("square")
	if index, err := strconv.Atoi(param); err == nil {
		if index < 0 || index >= ledger.NumSquares {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "square index out of range: "+param)
		}
		return ledger.Square(index), nil
	}
	sq, err := ledger.ParseSquare(param)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sq, nil
}

func requestGame(s gameStore, c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return s.getGame(id)
}

func requestPlayers(s gameStore, c echo.Context) (*Game, [2]*ledger.Player, error) {
	game, err := requestGame(s, c)
	if err != nil {
		return nil, [2]*ledger.Player{}, err
	}
	players, err := game.players()
	return game, players, err
}

func gameHref(game *Game, elem ...string) string {
	return path.Join(append([]string{"/games", game.GameID.String()}, elem...)...)
}

func (request moveRequest) validate() error {
	if request.Color == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "color is required")
	}
	if request.From == nil || request.To == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}
	return nil
}

func apiHandler(s gameStore) *echo.Echo {
	e := echo.New()

	e.GET("/games", func(c echo.Context) error {
		games, err := s.getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, gamesResponse{Games: games, Href: "/games"})
	})
	e.POST("/games", func(c echo.Context) error {
		game := newGame()
		if err := s.createGame(game); err != nil {
			return errToHTTP(err)
		}
		log.WithField("game", game.GameID).Info("game created")
		return c.JSON(http.StatusCreated, gameResponse{Game: *game, Href: gameHref(game)})
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(s, c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, gameResponse{Game: *game, Href: gameHref(game)})
	})
	e.POST("/games/:id/moves", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		var request moveRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if err := request.validate(); err != nil {
			return err
		}
		color, from, to := *request.Color, *request.From, *request.To
		entry := log.WithFields(log.Fields{"game": id, "color": color, "from": from, "to": to})
		var captured ledger.PieceType
		game, err := s.updateGame(id, func(game *Game) error {
			var err error
			captured, err = game.applyHalfMove(color, from, to)
			return err
		})
		if err != nil {
			entry.WithError(err).Warn("half-move rejected")
			return errToHTTP(err)
		}
		entry.WithField("captured", captured).Info("half-move applied")
		return c.JSON(http.StatusOK, moveResponse{Game: *game, Captured: captured, Href: gameHref(game)})
	})
	e.GET("/games/:id/squares/:square", func(c echo.Context) error {
		game, players, err := requestPlayers(s, c)
		if err != nil {
			return errToHTTP(err)
		}
		sq, err := requestSquare(c)
		if err != nil {
			return err
		}
		sides := make([]sideSquare, 0, len(players))
		for _, player := range players {
			piece, _ := player.PieceTypeAt(sq)
			sides = append(sides, sideSquare{
				Color:      player.Color(),
				Occupied:   player.HasPieceOn(sq),
				Piece:      piece,
				KingAround: player.HasKingAround(sq),
			})
		}
		return c.JSON(http.StatusOK, squareResponse{Square: sq.String(), Sides: sides, Href: gameHref(game, "squares", sq.String())})
	})
	e.GET("/games/:id/stats", func(c echo.Context) error {
		game, err := requestGame(s, c)
		if err != nil {
			return errToHTTP(err)
		}
		sides, err := game.stats()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, statsResponse{Sides: sides, Href: gameHref(game, "stats")})
	})
	e.GET("/games/:id/board.svg", func(c echo.Context) error {
		_, players, err := requestPlayers(s, c)
		if err != nil {
			return errToHTTP(err)
		}
		c.Response().Header().Set(echo.HeaderContentType, "image/svg+xml")
		c.Response().WriteHeader(http.StatusOK)
		drawBoards(c.Response(), players[:]...)
		return nil
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
