package database

import (
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/errors"
	"conference-webapp/model"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in maps behind one mutex. It backs the
// handler tests and mirrors the Mongo store's semantics, including the
// submission identifier retry and the cascade on conference delete.
type MemoryStore struct {
	mu          sync.Mutex
	users       map[string]model.UserData
	conferences map[string]model.Conference
	submissions map[string]model.Submission
	committee   map[string]model.OrganizingCommittee
	sessions    map[string]model.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       map[string]model.UserData{},
		conferences: map[string]model.Conference{},
		submissions: map[string]model.Submission{},
		committee:   map[string]model.OrganizingCommittee{},
		sessions:    map[string]model.Session{},
	}
}

func (store *MemoryStore) GetUser(login string) (model.UserData, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.users[login], nil
}

func (store *MemoryStore) InsertUser(user model.UserData) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.users[user.Login] = user
	return nil
}

func (store *MemoryStore) UpdateUser(user model.UserData) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.users[user.Login]; !ok {
		return errors.ErrNotFound
	}
	store.users[user.Login] = user
	return nil
}

func (store *MemoryStore) GetConferences() ([]model.Conference, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	conferences := []model.Conference{}
	for _, conf := range store.conferences {
		conferences = append(conferences, conf)
	}
	sort.Slice(conferences, func(i, j int) bool {
		return conferences[i].StartDate < conferences[j].StartDate
	})
	return conferences, nil
}

func (store *MemoryStore) GetOpenConferences(today string) ([]model.Conference, error) {
	conferences, _ := store.GetConferences()

	open := []model.Conference{}
	for _, conf := range conferences {
		if conf.EndDate >= today {
			open = append(open, conf)
		}
	}
	return open, nil
}

func (store *MemoryStore) GetConference(id string) (model.Conference, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	conf, ok := store.conferences[id]
	if !ok {
		return model.Conference{}, errors.ErrNotFound
	}
	return conf, nil
}

func (store *MemoryStore) InsertConference(conf model.Conference) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.conferences[conf.Id.Hex()] = conf
	return nil
}

func (store *MemoryStore) UpdateConference(conf model.Conference) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.conferences[conf.Id.Hex()]; !ok {
		return errors.ErrNotFound
	}
	store.conferences[conf.Id.Hex()] = conf
	return nil
}

func (store *MemoryStore) DeleteConference(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.conferences[id]; !ok {
		return errors.ErrNotFound
	}
	delete(store.conferences, id)

	for subId, sub := range store.submissions {
		if sub.ConferenceId.Hex() == id {
			delete(store.submissions, subId)
		}
	}
	for sessId, sess := range store.sessions {
		if sess.ConferenceId.Hex() == id {
			delete(store.sessions, sessId)
		}
	}
	for memberId, member := range store.committee {
		if member.ConferenceId.Hex() == id {
			delete(store.committee, memberId)
		}
	}
	return nil
}

func (store *MemoryStore) GetAllSubmissions() ([]model.Submission, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	submissions := []model.Submission{}
	for _, sub := range store.submissions {
		submissions = append(submissions, sub)
	}
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].SubmissionDate > submissions[j].SubmissionDate
	})
	return submissions, nil
}

func (store *MemoryStore) GetSubmissionsForOwner(owner string) ([]model.Submission, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	submissions := []model.Submission{}
	for _, sub := range store.submissions {
		if sub.Owner == owner {
			submissions = append(submissions, sub)
		}
	}
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].SubmissionDate > submissions[j].SubmissionDate
	})
	return submissions, nil
}

func (store *MemoryStore) GetSubmission(id string) (model.Submission, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	sub, ok := store.submissions[id]
	if !ok {
		return model.Submission{}, errors.ErrNotFound
	}
	return sub, nil
}

func (store *MemoryStore) InsertSubmission(sub model.Submission) (model.Submission, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for attempt := 0; attempt < submissionIdRetries; attempt++ {
		if sub.Id == "" {
			sub.Id = model.NewSubmissionId()
		}
		if _, taken := store.submissions[sub.Id]; !taken {
			store.submissions[sub.Id] = sub
			return sub, nil
		}
		sub.Id = ""
	}
	return model.Submission{}, errors.ErrNotFound
}

func (store *MemoryStore) UpdateSubmission(sub model.Submission) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.submissions[sub.Id]; !ok {
		return errors.ErrNotFound
	}
	store.submissions[sub.Id] = sub
	return nil
}

func (store *MemoryStore) CountSubmissionsOnDay(owner, day, excludeId string) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var count int64
	for _, sub := range store.submissions {
		if sub.Owner == owner && sub.SubmissionDate == day && sub.Id != excludeId {
			count++
		}
	}
	return count, nil
}

func (store *MemoryStore) GetCommitteeMembers(confId string) ([]model.OrganizingCommittee, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	members := []model.OrganizingCommittee{}
	for _, member := range store.committee {
		if member.ConferenceId.Hex() == confId {
			members = append(members, member)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].UserLogin < members[j].UserLogin
	})
	return members, nil
}

func (store *MemoryStore) InsertCommitteeMember(member model.OrganizingCommittee) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.committee[member.Id.Hex()] = member
	return nil
}

func (store *MemoryStore) DeleteCommitteeMember(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.committee[id]; !ok {
		return errors.ErrNotFound
	}
	delete(store.committee, id)
	return nil
}

func (store *MemoryStore) GetSessions(confId string) ([]model.Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	sessions := []model.Session{}
	for _, sess := range store.sessions {
		if sess.ConferenceId.Hex() == confId {
			sessions = append(sessions, sess)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].SessionDay != sessions[j].SessionDay {
			return sessions[i].SessionDay < sessions[j].SessionDay
		}
		return sessions[i].StartTime < sessions[j].StartTime
	})
	return sessions, nil
}

func (store *MemoryStore) GetSession(confId, id string) (model.Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	sess, ok := store.sessions[id]
	if !ok || sess.ConferenceId.Hex() != confId {
		return model.Session{}, errors.ErrNotFound
	}
	return sess, nil
}

func (store *MemoryStore) InsertSession(sess model.Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if sess.Id.IsZero() {
		sess.Id = primitive.NewObjectID()
	}
	store.sessions[sess.Id.Hex()] = sess
	return nil
}

func (store *MemoryStore) UpdateSession(sess model.Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.sessions[sess.Id.Hex()]; !ok {
		return errors.ErrNotFound
	}
	store.sessions[sess.Id.Hex()] = sess
	return nil
}

func (store *MemoryStore) DeleteSession(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.sessions[id]; !ok {
		return errors.ErrNotFound
	}
	delete(store.sessions, id)
	return nil
}
