package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tetratoy/internal/bootstrap"
	"tetratoy/internal/domain/session"
	errs "tetratoy/internal/errors"
)

const sessionKeyPrefix = "puzzle:session:"

// PuzzleRepository держит живые сессии в памяти процесса, а в Redis —
// только реестр sessionID -> размер доски с TTL. Состояние досок
// умирает вместе с процессом или с TTL: никакой дисковой персистентности
// у игрушки нет.
type PuzzleRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client

	mu   sync.RWMutex
	live map[string]*session.Session
}

func NewPuzzleRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client) *PuzzleRepository {
	return &PuzzleRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		live:  make(map[string]*session.Session),
	}
}

func (p *PuzzleRepository) sessionTTL() time.Duration {
	return time.Duration(p.cfg.SessionTTLHours) * time.Hour
}

func (p *PuzzleRepository) RegisterSession(ctx context.Context, sess *session.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := sessionKeyPrefix + sess.ID
	err := p.redis.Set(ctx, key, strconv.Itoa(sess.Main.Board().Size), p.sessionTTL()).Err()
	if err != nil {
		return fmt.Errorf("не удалось записать сессию в Redis: %w", err)
	}

	p.mu.Lock()
	p.live[sess.ID] = sess
	p.mu.Unlock()

	p.log.Infof("сессия %s зарегистрирована", sess.ID)
	return nil
}

// GetSession возвращает живую сессию. Если Redis ещё помнит сессию, а
// процесс — нет (рестарт сервера), реестр чистится и клиенту
// возвращается ErrSessionExpired: доски восстановить неоткуда.
func (p *PuzzleRepository) GetSession(ctx context.Context, sessionID string) (*session.Session, error) {
	p.mu.RLock()
	sess, ok := p.live[sessionID]
	p.mu.RUnlock()
	if ok {
		p.refreshTTL(ctx, sessionID)
		return sess, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := p.redis.Get(ctx, sessionKeyPrefix+sessionID).Err()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		p.log.Error(err)
		return nil, err
	}

	p.redis.Del(ctx, sessionKeyPrefix+sessionID)
	return nil, errs.ErrSessionExpired
}

func (p *PuzzleRepository) DeleteSession(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	_, ok := p.live[sessionID]
	delete(p.live, sessionID)
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.redis.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		p.log.Errorf("не удалось удалить сессию %s из Redis: %v", sessionID, err)
		return err
	}

	if !ok {
		return errs.ErrSessionNotFound
	}
	return nil
}

// refreshTTL продлевает запись реестра при каждой активности сессии.
func (p *PuzzleRepository) refreshTTL(ctx context.Context, sessionID string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.redis.Expire(ctx, sessionKeyPrefix+sessionID, p.sessionTTL()).Err(); err != nil {
		p.log.Errorf("не удалось продлить TTL сессии %s: %v", sessionID, err)
	}
}
