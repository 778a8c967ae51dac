package server

import (
	"fmt"

	"dlist/types"
)

func (s *Server) processCommand(cmd *types.Command) (logMessage string) {
	s.dataMux.Lock()
	defer s.dataMux.Unlock()
	switch cmd.Action {
	case types.AppendValue:
		l := s.listOrCreate(cmd.List)
		l.Append(cmd.Value)
		return fmt.Sprintf("Append() done. List(%s) length: %d", cmd.List, l.Len())
	case types.InsertValue:
		l := s.listOrCreate(cmd.List)
		l.Insert(cmd.PositionOr(0), cmd.Value)
		return fmt.Sprintf("Insert() done. List(%s) length: %d", cmd.List, l.Len())
	case types.GetValue:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		pos := cmd.PositionOr(0)
		if !inRange(l, pos) {
			return outOfRange(cmd, l, pos)
		}
		return fmt.Sprintf("Get() done. List(%s)[%d] = %s", cmd.List, pos, l.Get(pos))
	case types.SetValue:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		pos := cmd.PositionOr(0)
		if !inRange(l, pos) {
			return outOfRange(cmd, l, pos)
		}
		l.Set(pos, cmd.Value)
		return fmt.Sprintf("Set() done. List(%s)[%d] = %s", cmd.List, pos, cmd.Value)
	case types.PopValue:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		v, ok := l.PopOK(cmd.PositionOr(-1))
		if !ok {
			return fmt.Sprintf("Pop() done. List(%s) popped: none", cmd.List)
		}
		return fmt.Sprintf("Pop() done. List(%s) popped: %s", cmd.List, v)
	case types.RemoveValue:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		before := l.Len()
		l.Remove(cmd.Value)
		return fmt.Sprintf("Remove() done. List(%s) value: %s removed: %t", cmd.List, cmd.Value, l.Len() < before)
	case types.IndexOf:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		i := l.Index(cmd.Value, cmd.PositionOr(0))
		if i == types.NotFound {
			return fmt.Sprintf("Index() done. List(%s) value: %s not found", cmd.List, cmd.Value)
		}
		return fmt.Sprintf("Index() done. List(%s) value: %s index: %d", cmd.List, cmd.Value, i)
	case types.CountValue:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		return fmt.Sprintf("Count() done. List(%s) value: %s count: %d", cmd.List, cmd.Value, l.Count(cmd.Value))
	case types.ExtendList:
		src, ok := s.lists.Get(cmd.Source)
		if !ok {
			return fmt.Sprintf("Extend() failed. Unknown source list: %s", cmd.Source)
		}
		l := s.listOrCreate(cmd.List)
		l.Extend(src)
		return fmt.Sprintf("Extend() done. List(%s) length: %d", cmd.List, l.Len())
	case types.CopyList:
		src, ok := s.lists.Get(cmd.Source)
		if !ok {
			return fmt.Sprintf("Copy() failed. Unknown source list: %s", cmd.Source)
		}
		l := s.listOrCreate(cmd.List)
		l.Assign(src)
		return fmt.Sprintf("Copy() done. List(%s) length: %d", cmd.List, l.Len())
	case types.ClearList:
		s.listOrCreate(cmd.List).Clear()
		return fmt.Sprintf("Clear() done. List(%s)", cmd.List)
	case types.ListLen:
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		return fmt.Sprintf("Len() done. List(%s) length: %d", cmd.List, l.Len())
	case types.ShowList:
		if cmd.List == "" {
			resp := ""
			for _, name := range s.lists.Keys() {
				l, _ := s.lists.Get(name)
				resp += fmt.Sprintf(" List(%s): %s", name, l)
			}
			return fmt.Sprintf("Show() done.%s", resp)
		}
		l, ok := s.lists.Get(cmd.List)
		if !ok {
			return unknownList(cmd)
		}
		return fmt.Sprintf("Show() done. List(%s): %s", cmd.List, l)
	case types.DropList:
		ok := s.lists.Delete(cmd.List)
		return fmt.Sprintf("Drop() done. List(%s) deleted: %t", cmd.List, ok)
	default:
		return "Unknown action!"
	}
}

func (s *Server) listOrCreate(name string) *types.List[string] {
	l, ok := s.lists.Get(name)
	if !ok {
		l = types.NewList[string]()
		s.lists.Set(name, l)
	}
	return l
}

func inRange(l *types.List[string], position int) bool {
	return position >= -l.Len() && position < l.Len()
}

func unknownList(cmd *types.Command) string {
	return fmt.Sprintf("%s() failed. Unknown list: %s", cmd.Action, cmd.List)
}

func outOfRange(cmd *types.Command, l *types.List[string], position int) string {
	return fmt.Sprintf("%s() failed. List(%s) index %d out of range for length %d", cmd.Action, cmd.List, position, l.Len())
}
